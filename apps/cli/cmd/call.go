package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/envokit/envokit/packages/client"
	"github.com/envokit/envokit/packages/config"
	"github.com/envokit/envokit/packages/transport"
)

var callCmd = &cobra.Command{
	Use:   "call <method> <path>",
	Short: "Issue a single request against the configured API",
	Long: `Issue one request and print the unwrapped payload.

Examples:
  envokit call GET /users
  envokit call GET "/users?page=2" --query limit=50
  envokit call POST /users --data '{"name": "alpha"}'
  envokit call DELETE /users/7 --header "X-Reason: cleanup"
  envokit call GET /users --base-url https://staging.example.com --timeout 5`,
	Args: cobra.ExactArgs(2),
	RunE: callCommand,
}

var (
	configFlag  string
	baseURLFlag string
	timeoutFlag int
	queryFlag   []string
	headerFlag  []string
	dataFlag    string
	noColorFlag bool
)

func init() {
	callCmd.Flags().StringVarP(&configFlag, "config", "c", "", "path to config file")
	callCmd.Flags().StringVar(&baseURLFlag, "base-url", "", "override the configured base URL")
	callCmd.Flags().IntVarP(&timeoutFlag, "timeout", "t", 0, "request timeout in seconds")
	callCmd.Flags().StringArrayVarP(&queryFlag, "query", "q", nil, "query parameter as key=value (repeatable)")
	callCmd.Flags().StringArrayVarP(&headerFlag, "header", "H", nil, "header as 'Key: Value' (repeatable)")
	callCmd.Flags().StringVarP(&dataFlag, "data", "d", "", "JSON request body")
	callCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

func callCommand(cmd *cobra.Command, args []string) error {
	method, err := transport.ParseMethod(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	cfg = cfg.Merge(&config.Config{
		BaseURL:        baseURLFlag,
		TimeoutSeconds: timeoutFlag,
	})
	if cfg.BaseURL == "" {
		return errors.New("no base URL configured; set baseURL in the config file or pass --base-url")
	}
	if noColorFlag || cfg.GetNoColor() {
		color.NoColor = true
	}

	query, err := parseQueryFlags(queryFlag)
	if err != nil {
		return err
	}
	headers, err := parseHeaderFlags(headerFlag)
	if err != nil {
		return err
	}

	var body any
	if dataFlag != "" {
		if !gjson.Valid(dataFlag) {
			return fmt.Errorf("--data is not valid JSON")
		}
		body = json.RawMessage(dataFlag)
	}

	provider, err := cfg.Provider()
	if err != nil {
		return err
	}

	c, err := client.New(client.Config{
		BaseURL:        cfg.BaseURL,
		TimeoutSeconds: cfg.TimeoutSeconds,
		Headers:        cfg.Headers,
		Auth:           provider,
		RequestID:      cfg.GetRequestID(),
	})
	if err != nil {
		return err
	}

	payload, err := c.Do(cmd.Context(), method, args[1], query, body, headers)
	if err != nil {
		var apiErr *transport.APIError
		if errors.As(err, &apiErr) {
			printAPIError(cmd, apiErr)
		}
		return err
	}

	color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "OK")
	if len(payload) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), prettyJSON(payload))
	}
	return nil
}

func printAPIError(cmd *cobra.Command, apiErr *transport.APIError) {
	red := color.New(color.FgRed)
	if apiErr.Status > 0 {
		red.Fprintf(cmd.ErrOrStderr(), "FAILED (status %d)\n", apiErr.Status)
	} else {
		red.Fprintln(cmd.ErrOrStderr(), "FAILED")
	}
	if apiErr.HasCode {
		fmt.Fprintf(cmd.ErrOrStderr(), "Vendor error code: %d\n", apiErr.Code)
	}
}

func prettyJSON(payload []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		return string(payload)
	}
	return buf.String()
}

// parseQueryFlags turns repeated key=value flags into the explicit query map.
func parseQueryFlags(flags []string) (map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	query := make(map[string]string, len(flags))
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid query parameter %q, expected key=value", f)
		}
		query[key] = value
	}
	return query, nil
}

// parseHeaderFlags turns repeated "Key: Value" flags into a header map.
func parseHeaderFlags(flags []string) (map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(flags))
	for _, f := range flags {
		key, value, ok := strings.Cut(f, ":")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid header %q, expected 'Key: Value'", f)
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers, nil
}
