package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/server/endpoints"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	instance     *ServerInstance
	response     *http.Response
	responseBody []byte
}

// NewStepsContext creates a new steps context
func NewStepsContext() *StepsContext {
	return &StepsContext{}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a cipher server is running$`, s.aCipherServerIsRunning)
	sc.Step(`^a cipher server is running with algorithms "([^"]*)"$`, s.aCipherServerIsRunningWithAlgorithms)
	sc.Step(`^a cipher server is running with a text limit of (\d+)$`, s.aCipherServerIsRunningWithTextLimit)

	// Request steps
	sc.Step(`^I (\w+) "([^"]*)" with "([^"]*)" and key "([^"]*)"$`, s.iTransform)
	sc.Step(`^I send '([^']*)' to "([^"]*)"$`, s.iSendRawBody)
	sc.Step(`^I request the algorithm list$`, s.iRequestTheAlgorithmList)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the result should be "([^"]*)"$`, s.theResultShouldBe)
	sc.Step(`^the result should have (\d+) letters$`, s.theResultShouldHaveLetters)
	sc.Step(`^the padding should be (\d+)$`, s.thePaddingShouldBe)
	sc.Step(`^the error should contain "([^"]*)"$`, s.theErrorShouldContain)
	sc.Step(`^decrypting the result with "([^"]*)" and key "([^"]*)" should give "([^"]*)"$`, s.decryptingTheResultShouldGive)
	sc.Step(`^the algorithm list should be "([^"]*)"$`, s.theAlgorithmListShouldBe)

	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if s.instance != nil {
			s.instance.Stop()
		}
		return ctx, err
	})
}

// Background steps

func (s *StepsContext) aCipherServerIsRunning() error {
	s.instance = StartServer(DefaultServerConfig())
	return nil
}

func (s *StepsContext) aCipherServerIsRunningWithAlgorithms(algorithms string) error {
	cfg := DefaultServerConfig()
	cfg.Algorithms = strings.Split(algorithms, ",")
	s.instance = StartServer(cfg)
	return nil
}

func (s *StepsContext) aCipherServerIsRunningWithTextLimit(limit int) error {
	cfg := DefaultServerConfig()
	cfg.MaxTextLength = limit
	s.instance = StartServer(cfg)
	return nil
}

// Request steps

func (s *StepsContext) iTransform(mode, text, algorithm, key string) error {
	body, err := json.Marshal(endpoints.TransformRequest{Text: text, Key: key})
	if err != nil {
		return err
	}
	return s.doRequest("POST", "/"+mode+"/"+algorithm, body)
}

func (s *StepsContext) iSendRawBody(body, path string) error {
	return s.doRequest("POST", path, []byte(body))
}

func (s *StepsContext) iRequestTheAlgorithmList() error {
	return s.doRequest("GET", "/algorithms", nil)
}

func (s *StepsContext) doRequest(method, path string, body []byte) error {
	if s.instance == nil {
		return fmt.Errorf("no server is running")
	}

	req, err := http.NewRequest(method, s.instance.ServerURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	return err
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response received")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) transformResponse() (endpoints.TransformResponse, error) {
	var resp endpoints.TransformResponse
	if err := json.Unmarshal(s.responseBody, &resp); err != nil {
		return resp, fmt.Errorf("failed to parse response %q: %w", string(s.responseBody), err)
	}
	return resp, nil
}

func (s *StepsContext) theResultShouldBe(expected string) error {
	resp, err := s.transformResponse()
	if err != nil {
		return err
	}
	if resp.Result != expected {
		return fmt.Errorf("expected result %q, got %q", expected, resp.Result)
	}
	return nil
}

func (s *StepsContext) theResultShouldHaveLetters(n int) error {
	resp, err := s.transformResponse()
	if err != nil {
		return err
	}
	if got := len([]rune(resp.Result)); got != n {
		return fmt.Errorf("expected %d letters, got %d in %q", n, got, resp.Result)
	}
	return nil
}

func (s *StepsContext) thePaddingShouldBe(n int) error {
	resp, err := s.transformResponse()
	if err != nil {
		return err
	}
	if resp.Padding != n {
		return fmt.Errorf("expected padding %d, got %d", n, resp.Padding)
	}
	return nil
}

func (s *StepsContext) theErrorShouldContain(substr string) error {
	var resp map[string]string
	if err := json.Unmarshal(s.responseBody, &resp); err != nil {
		return fmt.Errorf("failed to parse error response %q: %w", string(s.responseBody), err)
	}
	if !strings.Contains(resp["error"], substr) {
		return fmt.Errorf("expected error containing %q, got %q", substr, resp["error"])
	}
	return nil
}

func (s *StepsContext) decryptingTheResultShouldGive(algorithm, key, expected string) error {
	resp, err := s.transformResponse()
	if err != nil {
		return err
	}
	if err := s.iTransform("decrypt", resp.Result, algorithm, key); err != nil {
		return err
	}
	if err := s.theResponseStatusShouldBe(http.StatusOK); err != nil {
		return err
	}
	return s.theResultShouldBe(expected)
}

func (s *StepsContext) theAlgorithmListShouldBe(expected string) error {
	var resp endpoints.AlgorithmsResponse
	if err := json.Unmarshal(s.responseBody, &resp); err != nil {
		return fmt.Errorf("failed to parse algorithm list: %w", err)
	}
	names := make([]string, 0, len(resp.Algorithms))
	for _, a := range resp.Algorithms {
		names = append(names, a.Name)
	}
	if got := strings.Join(names, ","); got != expected {
		return fmt.Errorf("expected algorithms %q, got %q", expected, got)
	}
	return nil
}
