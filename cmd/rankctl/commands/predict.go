package commands

import (
	"fmt"
	"strings"
	"time"

	"KonkurRankPredictor/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

var (
	predictURL   *string
	predictToken *string
	// request field -> flag value
	predictValues = map[string]*float64{}
	predictQuota  *int64
)

var predictFlags = []struct {
	flag  string
	field string
}{
	{"math", "Mathematics"},
	{"english", "English"},
	{"spec1", "Specialized1"},
	{"spec2", "Specialized2"},
	{"spec3", "Specialized3"},
	{"spec4", "Specialized4"},
	{"gpa", "EffectiveGPA"},
}

func init() {
	predictURL = predictCmd.Flags().String("url", "http://localhost:8080", "Base URL of the prediction API.")
	predictToken = predictCmd.Flags().String("token", "", "Bearer token, when the API requires one.")
	for _, f := range predictFlags {
		predictValues[f.field] = predictCmd.Flags().Float64(f.flag, 0, fmt.Sprintf("%s score.", f.field))
		predictCmd.MarkFlagRequired(f.flag)
	}
	predictQuota = predictCmd.Flags().Int64("quota", 0, "Quota category code.")
	predictCmd.MarkFlagRequired("quota")
	rootCmd.AddCommand(predictCmd)
}

var predictCmd = &cobra.Command{
	Use:   "predict --math <n> --english <n> --spec1..4 <n> --quota <n> --gpa <n> [--url <base>]",
	Short: "Sends one prediction request to a running API and prints the rank.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{"Quota": *predictQuota}
		for field, v := range predictValues {
			body[field] = *v
		}

		client := resty.New().SetTimeout(30 * time.Second)
		if *predictToken != "" {
			client.SetAuthToken(*predictToken)
		}

		var result models.PredictionResponse
		resp, err := client.R().
			SetContext(cmd.Context()).
			SetBody(body).
			SetResult(&result).
			Post(strings.TrimRight(*predictURL, "/") + "/predict")
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("predict failed with status %s: %s", resp.Status(), strings.TrimSpace(resp.String()))
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Rank)
		return nil
	},
}
