// internal/domain/models/region.go
package models

// Brazilian federative units (UFs) accepted in the uf field.
var allUFs = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
	"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
	"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// AllUFs returns all valid federative unit codes.
func AllUFs() []string {
	out := make([]string, len(allUFs))
	copy(out, allUFs)
	return out
}

// IsValidUF checks if a federative unit code is valid.
func IsValidUF(uf string) bool {
	for _, u := range allUFs {
		if u == uf {
			return true
		}
	}
	return false
}
