package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/baechuer/hbnb-service/internal/application/catalog"
	"github.com/baechuer/hbnb-service/internal/config"
	"github.com/baechuer/hbnb-service/internal/domain"
)

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a JSON fixture into the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open fixture: %w", err)
			}
			defer f.Close()

			counts, err := runSeed(cmd.Context(), cfg, f)
			if err != nil {
				return err
			}
			ev := zlog.Info()
			for _, k := range domain.Kinds {
				ev = ev.Int(string(k), counts[k])
			}
			ev.Msg("fixture loaded")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "fixture JSON file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runSeed(ctx context.Context, c *config.Config, r io.Reader) (map[domain.Kind]int, error) {
	fx, err := catalog.DecodeFixture(r)
	if err != nil {
		return nil, err
	}

	be, err := openBackend(ctx, c)
	if err != nil {
		return nil, err
	}
	defer be.Close()

	pub, closer, err := openPublisher(c)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return newService(be.store, pub, c).Import(ctx, fx)
}
