package cmd

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/trand"
	"github.com/tutils/trand/rng"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print pseudo-random numbers",
	Long: `Print pseudo-random numbers from a linear congruential generator, For example:
  trand gen --bits=8 --seed=1 --a=13 --c=7 --m=31 --count=3
  trand gen --bits=32 --range=6 --count=10 --authority=http://127.0.0.1:8080
  trand gen --bytes=32`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if n := viper.GetInt("gen.bytes"); n > 0 {
			return genBytes(cmd.Context(), out, n)
		}

		switch bits := viper.GetInt("gen.bits"); bits {
		case 8:
			return gen[uint8](cmd.Context(), out)
		case 16:
			return gen[uint16](cmd.Context(), out)
		case 32:
			return gen[uint32](cmd.Context(), out)
		case 64:
			return gen[uint64](cmd.Context(), out)
		default:
			return fmt.Errorf("unsupported width %d, want 8, 16, 32 or 64", bits)
		}
	},
}

func init() {
	rootCmd.AddCommand(genCmd)

	flags := genCmd.Flags()
	flags.IntP("bits", "b", 32, "generator width: 8, 16, 32 or 64")
	flags.Uint64("seed", 0, "initial state (default from the authority or derived locally)")
	flags.Uint64("a", 0, "multiplier (default depends on --bits)")
	flags.Uint64("c", 0, "increment (default depends on --bits)")
	flags.Uint64("m", 0, "modulus (default depends on --bits)")
	flags.IntP("count", "n", 1, "how many numbers to print")
	flags.Uint64P("range", "r", 0, "print numbers in [0, range) instead of raw states")
	flags.Int("bytes", 0, "print this many hex encoded bytes instead of numbers")
	for _, key := range []string{"bits", "seed", "a", "c", "m", "count", "range", "bytes"} {
		viper.BindPFlag("gen."+key, flags.Lookup(key))
	}
}

// param reads a uint64 setting into T, or returns def when unset.
func param[T constraints.Unsigned](key string, def T) (T, error) {
	if !viper.IsSet(key) {
		return def, nil
	}
	v := viper.GetUint64(key)
	if v > uint64(^T(0)) {
		return 0, fmt.Errorf("--%s=%d does not fit in %d bits", key[len("gen."):], v, rng.Bits[T]())
	}
	return T(v), nil
}

func newGenerator[T constraints.Unsigned](ctx context.Context) (*rng.LCG[T], trand.Origin, error) {
	var seed T
	origin := trand.OriginDerived
	if viper.IsSet("gen.seed") {
		var err error
		if seed, err = param[T]("gen.seed", 0); err != nil {
			return nil, origin, err
		}
	} else {
		f, err := newFetcher()
		if err != nil {
			return nil, origin, err
		}
		ctx, cancel := context.WithTimeout(ctx, viper.GetDuration("timeout"))
		defer cancel()
		var s uint
		s, origin = trand.Seed(ctx, f)
		seed = rng.Narrow[T](uint64(s))
	}

	da, dc, dm := rng.Defaults[T]()
	a, err := param("gen.a", da)
	if err != nil {
		return nil, origin, err
	}
	c, err := param("gen.c", dc)
	if err != nil {
		return nil, origin, err
	}
	m, err := param("gen.m", dm)
	if err != nil {
		return nil, origin, err
	}
	g, err := rng.NewCustom(seed, a, c, m)
	return g, origin, err
}

func gen[T constraints.Unsigned](ctx context.Context, out io.Writer) error {
	g, origin, err := newGenerator[T](ctx)
	if err != nil {
		return err
	}
	max, err := param[T]("gen.range", 0)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	defer w.Flush()

	if isTerminal(out) {
		a, c, m := g.Params()
		fmt.Fprintf(w, "# lcg bits=%d a=%d c=%d m=%d seed=%d origin=%s\n",
			rng.Bits[T](), a, c, m, g.State(), origin)
	}
	for i := 0; i < viper.GetInt("gen.count"); i++ {
		if max > 0 {
			fmt.Fprintln(w, g.Range(max))
		} else {
			fmt.Fprintln(w, g.Next())
		}
	}
	return nil
}

func genBytes(ctx context.Context, out io.Writer, n int) error {
	g, _, err := newGenerator[uint64](ctx)
	if err != nil {
		return err
	}
	src := rng.NewSource(int64(g.State())).(rand.Source64)

	b := make([]byte, n)
	if _, err := io.ReadFull(rng.NewReader(src), b); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hex.EncodeToString(b))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
