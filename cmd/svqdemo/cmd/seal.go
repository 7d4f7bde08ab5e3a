package cmd

import (
	"bufio"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jpfluger/svaroq/svq"
	"github.com/jpfluger/svaroq/svqanswer"
	"github.com/jpfluger/svaroq/svqquestion"
	"github.com/jpfluger/svaroq/svqsecret"
	"github.com/spf13/cobra"
)

var flagOutPath string

var sealCmd = &cobra.Command{
	Use:   "seal <secret>",
	Short: "Seal a secret behind the configured security questions",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeal,
}

func init() {
	sealCmd.Flags().StringVarP(&flagOutPath, "out", "o", "", "write the sealed container to this file instead of stdout")
	rootCmd.AddCommand(sealCmd)
}

func runSeal(cmd *cobra.Command, args []string) error {
	n := int(flagQuestionCount)
	m := int(flagThreshold)

	bank := svqquestion.All()
	if n > len(bank) {
		return fmt.Errorf("requested %d questions but the bank only has %d", n, len(bank))
	}

	reader := bufio.NewReader(os.Stdin)
	items := make([]svqanswer.QuestionAnswerAndSalt, 0, n)
	for i := 0; i < n; i++ {
		q := bank[i]
		salt, err := svqquestion.GenerateSalt(rand.Reader)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n> ", q.Prompt)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		items = append(items, svqanswer.QuestionAnswerAndSalt{
			Question: q,
			Answer:   answer,
			Salt:     salt,
		})
	}

	secret := svqsecret.StringSecret(args[0])
	container, err := svq.Seal(rand.Reader, secret, items, n, m)
	if err != nil {
		logger().Error().Str("run_id", runID).Err(err).Msg("seal failed")
		return err
	}
	logger().Debug().Str("run_id", runID).Int("questions", n).Int("threshold", m).Msg("seal succeeded")

	out, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		return err
	}

	if flagOutPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	return os.WriteFile(flagOutPath, out, 0o600)
}
