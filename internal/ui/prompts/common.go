package prompts

// selectHeight sizes a select to its options, capped so long lists scroll.
func selectHeight(n int) int {
	const maxHeight = 15
	if n+2 > maxHeight {
		return maxHeight
	}
	return n + 2
}
