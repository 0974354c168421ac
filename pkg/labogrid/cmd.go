package labogrid

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/andrew-torda/labogrid/mol/cmmn"
	"github.com/andrew-torda/labogrid/pkg/config"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Ligand       string  // -i
	Experimental string  // -e
	Scale        float64 // -s
	Config       string  // -c
	Log          string  // -l
	About        bool    // -a
}

// options combines flags and config file. Flags win, but only if they
// were really given.
func (f *CmdFlag) options(fs *pflag.FlagSet) (Options, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return Options{}, &UsageError{Msg: "config file", Err: err}
	}
	opts := Options{Scale: cfg.Scale, Log: cfg.Log}
	if fs.Changed("scale") {
		opts.Scale = f.Scale
	}
	if fs.Changed("log") {
		opts.Log = f.Log
	}
	switch {
	case f.Ligand != "" && f.Experimental != "":
		return opts, usageErrorf("give a ligand (-i) or an experimental ligand (-e), not both")
	case f.Experimental != "":
		opts.Path, opts.Role = f.Experimental, cmmn.ReferenceLigand
	default:
		opts.Path, opts.Role = f.Ligand, cmmn.PrimaryLigand
	}
	return opts, nil
}

// NewCommand builds the labogrid command. Reports, help and errors all
// go to stdout.
func NewCommand(stdout io.Writer) *cobra.Command {
	var flags CmdFlag
	cmd := &cobra.Command{
		Use:           progName,
		Short:         "Gridbox size calculation for ligand docking",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unexpected argument %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.About {
				writeAbout(cmd.OutOrStdout())
				return nil
			}
			opts, err := flags.options(cmd.Flags())
			if err != nil {
				return err
			}
			return Run(opts, cmd.OutOrStdout())
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) { writeUsage(c.OutOrStdout()) })
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Msg: "bad flag", Err: err}
	})

	fs := cmd.Flags()
	fs.StringVarP(&flags.Ligand, "ligand", "i", "", "ligand file")
	fs.StringVarP(&flags.Experimental, "experimental", "e", "", "experimental ligand file")
	fs.Float64VarP(&flags.Scale, "scale", "s", config.DfltScale, "scale factor")
	fs.StringVarP(&flags.Config, "config", "c", "", "TOML file with defaults")
	fs.StringVarP(&flags.Log, "log", "l", "", "debugging log: stdout, stderr or file name")
	fs.BoolVarP(&flags.About, "about", "a", false, "about")
	return cmd
}
