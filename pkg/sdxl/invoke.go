package sdxl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
)

// Invoker sends a serialized request body to a model endpoint and
// returns the serialized response envelope.
type Invoker interface {
	Invoke(ctx context.Context, modelID string, body []byte) ([]byte, error)
}

// BedrockAPI abstracts the Bedrock runtime operation used by
// [BedrockInvoker]. The [bedrockruntime.Client] type satisfies this
// interface.
type BedrockAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockInvoker invokes models through the AWS Bedrock runtime.
//
// The caller is responsible for configuring the client with appropriate
// credentials and region. Any type satisfying [BedrockAPI] is accepted;
// typically a [bedrockruntime.Client].
type BedrockInvoker struct {
	client BedrockAPI
}

// NewBedrockInvoker creates a Bedrock-backed invoker.
func NewBedrockInvoker(client BedrockAPI) *BedrockInvoker {
	return &BedrockInvoker{client: client}
}

// Invoke sends one InvokeModel request and returns the raw response body.
// Transport and service errors are returned as-is apart from message
// wrapping; nothing is retried here.
func (b *BedrockInvoker) Invoke(ctx context.Context, modelID string, body []byte) ([]byte, error) {
	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("invoke %s: %s: %w", modelID, apiErr.ErrorCode(), err)
		}
		return nil, fmt.Errorf("invoke %s: %w", modelID, err)
	}
	return out.Body, nil
}

// DecodeEnvelope parses a serialized response envelope. A non-"success"
// result is returned as a *ResultError and no envelope is produced.
func DecodeEnvelope(data []byte) (*ResponseEnvelope, error) {
	var env ResponseEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if env.Result != ResultSuccess {
		return nil, &ResultError{Result: env.Result}
	}
	return &env, nil
}
