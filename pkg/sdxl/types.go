package sdxl

const (
	// ModelID is the Bedrock model identifier for Stable Diffusion XL.
	ModelID = "stability.stable-diffusion-xl"

	// ResultSuccess is the result value the service reports on success.
	ResultSuccess = "success"
)

// PromptEntry is one weighted text prompt in a generation request.
// Entry order is significant: it affects both the model output and the
// derived output filename.
type PromptEntry struct {
	// Text is the prompt text. Never empty; surrounding whitespace is
	// trimmed during parsing.
	Text string `json:"text"`

	// Weight is the prompt weight. Negative weights act as negative
	// prompts.
	Weight float64 `json:"weight"`
}

// Param is one user-supplied body parameter. Values for known numeric
// keys are coerced to int during parsing; all other values stay strings.
type Param struct {
	Key   string
	Value any
}

// Defaults holds the body parameters applied before user overrides.
// Explicit overrides with the same key win.
type Defaults struct {
	// Seed is the default generation seed, derived from a stable
	// machine identifier unless substituted.
	Seed int64
}

// DefaultBodyParams computes the default body parameters using the given
// seed source.
func DefaultBodyParams(src SeedSource) Defaults {
	return Defaults{Seed: src.StableSeed()}
}

// ResponseEnvelope is the decoded response from the model endpoint.
type ResponseEnvelope struct {
	// Result is "success" on success; any other value indicates a
	// service-level failure.
	Result string `json:"result"`

	// Artifacts are the generated images, in order.
	Artifacts []Artifact `json:"artifacts"`
}

// Artifact is one generated image returned by the service.
type Artifact struct {
	// Base64 is the base64-encoded PNG image data.
	Base64 string `json:"base64"`

	// Seed is the seed the service actually used for this artifact.
	Seed int64 `json:"seed"`

	// FinishReason reports why generation stopped (e.g. "SUCCESS",
	// "CONTENT_FILTERED").
	FinishReason string `json:"finishReason"`
}

// Request is a fully assembled generation request ready to send.
type Request struct {
	// Body is the canonical serialized JSON request body.
	Body []byte

	// Prompts are the text prompts carried in the body, used for
	// filename derivation.
	Prompts []PromptEntry

	// FromFile is true when the body was loaded from a prepared
	// request file. The request-body sidecar is not rewritten in
	// that case.
	FromFile bool
}
