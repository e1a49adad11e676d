package settings

// Merge overlays override onto base and returns the result as a new
// Document. Override values win on key collision; keys absent from the
// override keep the base value. Neither input is modified.
func Merge(base, override Document) Document {
	merged := make(Document, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
