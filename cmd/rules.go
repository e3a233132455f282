package cmd

import (
	"fmt"
	"os"

	"github.com/ankitn/skillforge/internal/rules"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the reward rules configuration",
}

var rulesPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved rules file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := rules.DefaultPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the rules that will apply in practice sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := rules.DefaultPath()
		if err != nil {
			return err
		}
		ruleSet, err := rules.Load(path)
		if err != nil {
			return err
		}
		if len(ruleSet) == 0 {
			fmt.Println("No rules configured. Add some at:", path)
			return nil
		}
		for i, r := range ruleSet {
			fmt.Printf("%d. [%s] %s %s %s → %s %d  %q\n",
				i+1, r.ID, r.Trigger, r.Operator, r.ConditionValue, r.Effect, r.Points, r.Message)
		}
		return nil
	},
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a rules file against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			p, err := rules.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		ruleSet, err := rules.Parse(data)
		if err != nil {
			return fmt.Errorf("invalid rules file: %w", err)
		}
		fmt.Printf("OK: %d rule(s) in %s\n", len(ruleSet), path)
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesPathCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesCheckCmd)
}
