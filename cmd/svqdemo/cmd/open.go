package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jpfluger/svaroq/svq"
	"github.com/jpfluger/svaroq/svqanswer"
	"github.com/jpfluger/svaroq/svqsecret"
	"github.com/spf13/cobra"
)

var flagInPath string

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Recover a secret sealed behind security questions",
	Args:  cobra.NoArgs,
	RunE:  runOpen,
}

func init() {
	openCmd.Flags().StringVarP(&flagInPath, "in", "i", "", "path to the sealed container file (required)")
	_ = openCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(flagInPath)
	if err != nil {
		return err
	}

	var container svq.Container
	if err := json.Unmarshal(raw, &container); err != nil {
		return fmt.Errorf("invalid container: %w", err)
	}

	n := container.QuestionsAndSalts.Len()
	m := int(flagThreshold)

	reader := bufio.NewReader(os.Stdin)
	items := make([]svqanswer.QuestionAnswerAndSalt, 0, n)
	for _, qs := range container.QuestionsAndSalts.Items() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n> ", qs.Question.Prompt)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		items = append(items, svqanswer.QuestionAnswerAndSalt{
			Question: qs.Question,
			Answer:   answer,
			Salt:     qs.Salt,
		})
	}

	secret, err := svq.Open[svqsecret.StringSecret](&container, items, n, m, svqsecret.StringSecretFromBytes)
	if err != nil {
		logger().Error().Str("run_id", runID).Err(err).Msg("open failed")
		return err
	}
	logger().Debug().Str("run_id", runID).Msg("open succeeded")

	fmt.Fprintln(cmd.OutOrStdout(), string(secret))
	return nil
}
