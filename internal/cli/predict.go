package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"solarcast/internal/config"
	"solarcast/internal/manager"
	"solarcast/pkg/types"
)

// predict dispatches through the same manager methods the HTTP handlers use.
func predict(cmd *cobra.Command, cfg config.Config) error {
	store, err := loadStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	mgr := manager.New(store)

	flags := cmd.Flags()
	model, _ := flags.GetString("model")
	var out any
	if flags.Changed("year") {
		year, _ := flags.GetInt("year")
		out, err = mgr.PredictYear(cmd.Context(), types.YearRequest{Year: &year, ModelType: &model})
	} else {
		date, _ := flags.GetString("date")
		out, err = mgr.PredictDate(cmd.Context(), types.DateRequest{Date: &date, ModelType: &model})
	}
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
