package utils

// Window is one slice of a larger text, with byte offsets into the original.
type Window struct {
	Start int // byte offset of the first byte
	End   int // byte offset one past the last byte
	Text  string
}

// SplitWindows splits text into windows of approximately 'size' bytes with
// 'overlap' bytes shared between neighbours. Slicing happens on rune
// boundaries so multi-byte characters are never cut in half.
//
// Invariant: every byte of text is covered by at least one window, so no
// content is unreachable by search.
func SplitWindows(text string, size int, overlap int) []Window {
	if text == "" {
		return nil
	}
	if size <= 0 {
		size = len(text)
	}
	if len(text) <= size {
		return []Window{{Start: 0, End: len(text), Text: text}}
	}

	step := size - overlap
	if step <= 0 {
		step = size // fallback if overlap >= size
	}

	// Pre-compute byte offsets per rune so window edges stay on boundaries.
	offsets := runeOffsets(text)
	total := len(offsets) - 1 // number of runes

	var windows []Window
	for start := 0; start < total; {
		end := start
		for end < total && offsets[end+1]-offsets[start] <= size {
			end++
		}
		if end == start {
			end = start + 1 // single rune wider than the budget, take it anyway
		}

		windows = append(windows, Window{
			Start: offsets[start],
			End:   offsets[end],
			Text:  text[offsets[start]:offsets[end]],
		})

		if end == total {
			break
		}

		// Advance by 'step' bytes, staying on a rune boundary.
		next := start
		for next < total && offsets[next]-offsets[start] < step {
			next++
		}
		if next == start {
			next = start + 1
		}
		start = next
	}

	return windows
}

// runeOffsets returns the byte offset of each rune plus a trailing len(text).
func runeOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	return offsets
}
