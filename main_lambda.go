//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// lambdaLog is built once per container.
var lambdaLog = func() *zap.Logger {
	log, err := NewLogger(LoggingConfig{Level: "info", Format: "json"})
	if err != nil {
		return zap.NewNop()
	}
	return log
}()

// handler accepts {"role": ..., "cores": [...], "gems": [...]} and returns
// the Result as JSON.
func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}

	input, err := loadFromString(body, RoleNone)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	cfg := DefaultConfig()
	cfg.Search.ParallelGroups = true
	res, err := NewOptimizer(input, ProfileFor(input.Role), cfg.Search, lambdaLog).Optimize()
	if errors.Is(err, ErrMalformedInput) {
		return errResp(http.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		return errResp(http.StatusInternalServerError, err.Error())
	}

	respJSON, err := json.Marshal(res)
	if err != nil {
		return errResp(http.StatusInternalServerError, err.Error())
	}
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
