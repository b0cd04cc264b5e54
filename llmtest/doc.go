// Package llmtest provides an in-process fake completion endpoint for tests
// and local development.
//
// The fake accepts the completion wire format (a JSON body with a "prompt"
// array) on any path and method, captures every request, and answers from a
// scripted queue or a configured fallback behavior. The zero behavior echoes
// each prompt back as its completion.
//
//	srv := llmtest.Start(t, llmtest.WithEcho(strings.ToUpper))
//
//	client, err := llm.New(llm.Config{
//		API:    llm.APIOpenAI,
//		Params: map[string]any{"url": srv.URL()},
//	})
//
// Scripted responses take precedence over the fallback and are served once
// each, in order:
//
//	srv.Enqueue(500, gin.H{"error": "overloaded"})
package llmtest
