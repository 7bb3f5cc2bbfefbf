// Package view renders the customer search screen.
//
// Rendering is a pure function of [State]: the same state and styles always
// produce the same text, and the filter is re-run on every call so the view
// never holds a stale result.
//
// # States
//
// [Render] shows exactly one of three states:
//   - Loading: the spinner and [LoadingText], nothing else
//   - Idle: the table header and [IdlePrompt] when the query is empty
//   - Results: a "Found N results" line followed by at most Limit rows
//
// The count always reports every match, including rows past the limit.
// A failed load renders like an empty dataset.
//
// # Layout
//
// Interactive renders add the title, the input line and a help bar built by
// [RenderHelp]. When Height is set, the table body is windowed; [BodyRows],
// [MaxScroll] and [ClampScroll] let the caller keep its scroll offset in
// range. When Width is set, columns shrink to fit and long cells end in
// "...".
//
// # Basic Usage
//
//	out := view.Render(view.State{
//	    Query:   "john",
//	    Dataset: ds,
//	    Width:   80,
//	}, styles.Plain())
//	fmt.Println(out)
package view
