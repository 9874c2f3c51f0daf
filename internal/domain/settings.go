package domain

import "strings"

// Reserved names that cannot be added or removed by the user
const (
	OtherPlace  = "その他"
	UnsetTarget = "未設定"
)

// DefaultPlaces are the built-in venues offered before any custom ones
var DefaultPlaces = []string{
	"マリノストリコールパーク",
	"フットサルクラブ横浜",
	"アイリフットサル",
	"体育館",
	"ジェクサーフットサル",
	"南町田インドア球's倶楽部フットサル",
	"都築スポーツセンター",
	"緑スポーツセンター",
	"港北スポーツセンター",
	"横浜国際プール",
	"フットボールパーク東山田",
	"大会",
	OtherPlace,
}

// Settings is the user-maintained configuration for record entry
type Settings struct {
	AssistTargets        []string `json:"assistTargets"`
	CustomPlaces         []string `json:"customPlaces"`
	SelectedAssistTarget string   `json:"selectedAssistTarget"`
}

// Normalized returns a copy with trimmed, non-empty, deduplicated lists
func (s Settings) Normalized() Settings {
	return Settings{
		AssistTargets:        Uniq(s.AssistTargets),
		CustomPlaces:         Uniq(s.CustomPlaces),
		SelectedAssistTarget: strings.TrimSpace(s.SelectedAssistTarget),
	}
}

// Places merges the defaults with the custom venues; OtherPlace always sorts last
func Places(defaults []string, s Settings) []string {
	merged := Uniq(append(append([]string{}, defaults...), s.CustomPlaces...))

	places := make([]string, 0, len(merged))
	hasOther := false
	for _, p := range merged {
		if p == OtherPlace {
			hasOther = true
			continue
		}
		places = append(places, p)
	}
	if hasOther {
		places = append(places, OtherPlace)
	}
	return places
}

// AssistTargetsWithUnset returns UnsetTarget followed by the configured targets
func AssistTargetsWithUnset(s Settings) []string {
	return append([]string{UnsetTarget}, Uniq(s.AssistTargets)...)
}

// Uniq trims values, drops empties and keeps the first occurrence of each
func Uniq(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Contains reports whether values holds v
func Contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
