package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"heprop/config"
	"heprop/field"
	"heprop/property"
	"heprop/server"
	"heprop/viscosity"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "heprop",
		Short:         "Superfluid helium property tables for flow solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.AddCommand(newServeCmd(), newLookupCmd(), newTableCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve property models over websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			upgrader := websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			}
			return server.NewServer(cfg, upgrader).Serve()
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", config.DefaultPath, "ini configuration file")
	return cmd
}

func newLookupCmd() *cobra.Command {
	var (
		temperature float64
		rho         float64
		linear      bool
	)
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Print He II properties at one temperature",
		RunE: func(cmd *cobra.Command, args []string) error {
			return lookup(cmd.OutOrStdout(), temperature, rho, linear)
		},
	}
	cmd.Flags().Float64VarP(&temperature, "T", "T", 1.9, "temperature, K")
	cmd.Flags().Float64Var(&rho, "rho", 145.5, "density, kg/m3")
	cmd.Flags().BoolVar(&linear, "linear", false, "interpolate between table samples")
	return cmd
}

func lookup(w io.Writer, temperature, rho float64, linear bool) error {
	interpolate := 0.0
	if linear {
		interpolate = 1
	}
	prms := dbf.Params{
		&dbf.P{N: "TMean", V: temperature},
		&dbf.P{N: "rhoHe", V: rho},
		&dbf.P{N: "interpolate", V: interpolate},
	}
	m, err := viscosity.NewHeliumConst(field.Mesh{Cells: 1}, prms)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m.Snapshot())
}

func newTableCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print one bundled property table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTable(cmd.OutOrStdout(), name)
		},
	}
	cmd.Flags().StringVarP(&name, "property", "p", property.Eta, "one of beta, AGM, s, eta, cp, onebyf")
	return cmd
}

func printTable(w io.Writer, name string) error {
	tables := property.Helium()
	tbl := tables.ByName(name)
	if tbl == nil {
		return fmt.Errorf("no table named %q, expected one of %v", name, property.Names)
	}
	for i := 0; i < tbl.Len(); i++ {
		if _, err := fmt.Fprintf(w, "%.3f %.6e\n", tables.Domain.Temperature(i), tbl.At(i)); err != nil {
			return err
		}
	}
	return nil
}
