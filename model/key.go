package model

// Key prefixes used by callers to namespace entries that share a tier.
const (
	KeyResumeGraph     = "graph:"
	KeyExtractedParams = "query:"
	KeyFieldSchemas    = "fields:"
	KeyPayloadData     = "payload:"
)

// BuildKey joins a prefix and an identifier, e.g. BuildKey(KeyPayloadData, id) -> "payload:<id>".
func BuildKey(prefix, id string) string {
	return prefix + id
}
