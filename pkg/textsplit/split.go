// Package textsplit cuts long text into protocol-safe segments for transports
// with a hard message length limit.
package textsplit

import "strings"

// DiscordMessageLimit is the hard per-message length limit of the Discord API.
const DiscordMessageLimit = 2000

// Split cuts text into consecutive segments of at most max characters.
// While more than DiscordMessageLimit characters remain, a candidate segment
// containing a newline is cut just before its last newline so lines are not
// broken mid-way; the newline then leads the next segment. A segment with no
// newline is emitted at full length, so a long unbroken line is never split
// further than max. The segments concatenate back to the input exactly.
func Split(text string, max int) []string {
	if max <= 0 || text == "" {
		return nil
	}
	var segments []string
	for len(text) > 0 {
		n := max
		if n > len(text) {
			n = len(text)
		}
		seg := text[:n]
		if len(text) > DiscordMessageLimit {
			if cut := strings.LastIndexByte(seg, '\n'); cut > 0 {
				seg = seg[:cut]
			}
		}
		segments = append(segments, seg)
		text = text[len(seg):]
	}
	return segments
}
