package audio

import (
	"fmt"
	"math/rand"
	"net/url"
	"sort"
	"strings"

	"github.com/lai323/vocabgarden/normalize"
	"github.com/lai323/vocabgarden/vocab"
)

const (
	UserAudioDir   = "UserAudio"
	LegacyAudioDir = "Audio"
	DefaultVoice   = "Female option 1"
)

// ResolveVoice picks the voice folder to play from. A preferred voice that
// the manifest does not know is replaced by the first known voice, and a
// warning is returned instead of an error.
func ResolveVoice(m Manifest, preferred string) (string, string) {
	if m.HasVoice(preferred) {
		return preferred, ""
	}
	voices := m.Voices()
	if len(voices) == 0 {
		return preferred, fmt.Sprintf("audio manifest lists no voices, keeping %q", preferred)
	}
	return voices[0], fmt.Sprintf("voice %q not found in audio manifest, using %q", preferred, voices[0])
}

// escapeComponent escapes like encodeURIComponent: everything except
// letters, digits and -_.!~*'().
func escapeComponent(s string) string {
	e := strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	return componentKeep.Replace(e)
}

var componentKeep = strings.NewReplacer("%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")

func templatePath(dir, voice, term string) string {
	return "./" + dir + "/" + escapeComponent(voice) + "/" + escapeComponent(term) + ".wav"
}

// Candidates lists the audio paths to try for card, in order. Each distinct
// normalized term contributes a user override path followed by the
// official one: manifest by raw term, manifest by normalized term, then
// the legacy templated path.
func Candidates(card *vocab.Card, voice string, m Manifest) []string {
	var urls []string
	tried := map[string]bool{}
	for _, term := range card.Terms() {
		n := normalize.Japanese(term)
		if n == "" || tried[n] {
			continue
		}
		tried[n] = true

		official := m.Lookup(term, voice)
		if official == "" {
			official = m.Lookup(n, voice)
		}
		if official == "" {
			official = templatePath(LegacyAudioDir, voice, n)
		}
		urls = append(urls, templatePath(UserAudioDir, voice, n), official)
	}
	return urls
}

// SampleURL picks a random manifest entry recorded in voice, "" if none.
func SampleURL(m Manifest, voice string, r *rand.Rand) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if m[k][voice] != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	return m.Lookup(keys[r.Intn(len(keys))], voice)
}
