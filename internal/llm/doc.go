// Package llm provides the text-completion client used by the safety
// pipeline. It supports OpenAI, Groq and Anthropic providers behind a
// single interface so a deterministic stub can substitute in tests.
package llm
