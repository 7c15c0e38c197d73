package models

// LocalizedText is a bilingual value stored as two columns. Import rows and
// admin payloads often carry a single language; NewLocalizedText copies the
// one provided value into both locales so nothing downstream has to deal
// with a half-filled pair.
type LocalizedText struct {
	En string `json:"en"`
	Vi string `json:"vi"`
}

func NewLocalizedText(value string) LocalizedText {
	return LocalizedText{En: value, Vi: value}
}

// Matches reports whether either locale equals the given value exactly.
func (l LocalizedText) Matches(value string) bool {
	return l.En == value || l.Vi == value
}
