package domain

// Merge updates accept arbitrary JSON bodies, so each resource declares the
// fields a caller may overwrite. Anything else (ids, owner email, adopted or
// status flags, timestamps, role) is stripped before the $set is built.

var PetUpdatableFields = map[string]struct{}{
	"name":             {},
	"age":              {},
	"category":         {},
	"location":         {},
	"image":            {},
	"shortDescription": {},
	"longDescription":  {},
}

var DonationUpdatableFields = map[string]struct{}{
	"name":             {},
	"image":            {},
	"maxDonation":      {},
	"lastDate":         {},
	"shortDescription": {},
	"longDescription":  {},
}

// FilterUpdate returns the subset of fields present in allowed. The input map
// is not modified. An empty result means the caller supplied nothing it is
// permitted to change.
func FilterUpdate(fields map[string]any, allowed map[string]struct{}) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, ok := allowed[k]; ok {
			out[k] = v
		}
	}
	return out
}
