package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/render"
	"github.com/vovakirdan/blockfall/internal/scenario"
)

var flagRunVerbose bool

var runCmd = &cobra.Command{
	Use:   "run <scenario>...",
	Short: "Replay scenario files",
	Long: `Loads each YAML scenario (or every scenario in a directory), replays
its placements until the field settles and checks the expectations it
declares.

Examples:
  blockfall run scenarios/gap-fill.yaml
  blockfall run scenarios/ -v`,
	Args: cobra.MinimumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().BoolVarP(&flagRunVerbose, "verbose", "v", false, "Print every step and the final field")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail(err)
	}
	logger := newLogger(cfg)
	r := newRenderer(cfg)

	var all []*scenario.Scenario
	for _, arg := range args {
		loaded, err := loadScenarios(arg)
		if err != nil {
			fail(err)
		}
		all = append(all, loaded...)
	}

	failed := 0
	for _, s := range all {
		tr, err := scenario.Run(s)
		if err == nil {
			err = scenario.Check(s, tr)
		}

		status := "ok"
		if err != nil {
			status = "FAIL"
			failed++
		}
		fmt.Printf("%-4s  %-20s  ticks=%d cleared=%d height=%d\n",
			status, s.Name, len(tr.Ticks), tr.Cleared(), finalHeight(tr))

		if flagRunVerbose {
			for _, tk := range tr.Ticks {
				fmt.Printf("      piece=%d %-7s height=%d cleared=%v\n", tk.Placement, tk.Result.Kind, tk.Height, tk.Result.Cleared)
			}
			if tr.Final != nil {
				fmt.Println(r.Field(tr.Final))
				fmt.Println(render.Status(tr.Final))
			}
		}
		if err != nil {
			logger.Error("scenario failed", "name", s.Name, "err", err)
		}
	}

	if failed > 0 {
		fail(fmt.Errorf("%d of %d scenarios failed", failed, len(all)))
	}
}

func loadScenarios(path string) ([]*scenario.Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		all, err := scenario.LoadDir(path)
		if err != nil {
			return nil, err
		}
		if len(all) == 0 {
			return nil, errors.New("no scenarios in " + path)
		}
		return all, nil
	}
	s, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	return []*scenario.Scenario{s}, nil
}

func finalHeight(tr scenario.Trace) int {
	if tr.Final == nil {
		return 0
	}
	return tr.Final.ContentHeight()
}
