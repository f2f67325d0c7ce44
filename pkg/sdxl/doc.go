// Package sdxl builds and runs Stable Diffusion XL text-to-image requests
// against AWS Bedrock.
//
// The package covers the full request pipeline:
//   - parsing prompt and body-parameter token lists into typed values
//   - assembling a canonical, insertion-ordered JSON request body
//   - invoking the Bedrock runtime model endpoint
//   - deriving reproducible output filenames from the request content
//   - writing the returned artifacts (and the request body) to disk
//
// Request serialization is deterministic: the same logical body always
// produces the same bytes, so the content fingerprint used for file naming
// is stable across runs and processes.
//
// Example usage:
//
//	prompts, _ := sdxl.ParsePrompts([]string{"a red fox", "1.0"})
//	params, _ := sdxl.ParseParams([]string{"steps", "30"})
//	body := sdxl.BuildBody(sdxl.DefaultBodyParams(sdxl.NodeSeed{}), params, prompts)
//	data, _ := body.Encode()
package sdxl
