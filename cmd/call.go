package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/SaiNageswarS/video-mcp/handlers"
	"github.com/spf13/cobra"
)

var callArgs []string

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Run one tool in-process and print its result",
	Example: "  video-mcp call list_media --mock --arg page_size=3 --arg fields='[\"id\",\"name\"]'\n" +
		"  video-mcp call get_user --mock --arg user_id=alice --arg format=markdown",
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringArrayVar(&callArgs, "arg", nil, "tool argument as key=value; JSON values are decoded")
}

func runCall(cmd *cobra.Command, args []string) error {
	toolArgs, err := parseToolArgs(callArgs)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	h, err := newHandlers(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout())
	defer cancel()

	res, err := h.Call(ctx, args[0], toolArgs)
	if err != nil {
		return err
	}

	text := handlers.ResultText(res)
	if res.IsError {
		return errors.New(text)
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// parseToolArgs turns key=value pairs into tool arguments. Values that parse
// as JSON keep their JSON type; everything else is a string.
func parseToolArgs(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q is not key=value", pair)
		}

		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		out[key] = v
	}
	return out, nil
}
