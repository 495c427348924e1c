// Command flexdump inspects and transforms flex container files from the
// command line: dump an entry-by-entry listing, verify a buffer's header
// and tag consistency, or round-trip it through the compressed wrapper.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsta/flex/compress"
	"github.com/mattsta/flex/container"
	"github.com/mattsta/flex/format"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flexdump",
		Short: "Inspect and transform flex container files",
	}

	rootCmd.AddCommand(dumpCmd(), verifyCmd(), compressCmd(), decompressCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print every entry in a container, forward, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			c, err := container.FromBytes(buf)
			if err != nil {
				return fmt.Errorf("decode container: %w", err)
			}
			defer c.Free()

			fmt.Printf("total_bytes=%d count=%d\n", c.TotalBytes(), c.Count())

			for i := 0; i < c.Count(); i++ {
				v, err := c.Index(i)
				if err != nil {
					return err
				}

				fmt.Printf("%d: %s\n", i, describe(v))
			}

			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Validate a container's header and entry framing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			c, err := container.FromBytes(buf)
			if err != nil {
				return fmt.Errorf("invalid: %w", err)
			}
			defer c.Free()

			for i := 0; i < c.Count(); i++ {
				if _, err := c.Index(i); err != nil {
					return fmt.Errorf("entry %d: %w", i, err)
				}
			}

			fmt.Printf("ok: %d entries, %d bytes\n", c.Count(), c.TotalBytes())

			return nil
		},
	}
}

func compressCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compress <file>",
		Short: "Compress a container file into the wrapper form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			c, err := container.FromBytes(buf)
			if err != nil {
				return fmt.Errorf("decode container: %w", err)
			}
			defer c.Free()

			packed, err := compress.Compress(c)
			if err != nil {
				return err
			}

			return os.WriteFile(outputPath(output, args[0], ".flexz"), packed, 0o644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <file>.flexz)")

	return cmd
}

func decompressCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decompress <file>",
		Short: "Decompress a wrapper-form file back into a plain container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			c, err := compress.Decompress(buf)
			if err != nil {
				return fmt.Errorf("decompress: %w", err)
			}
			defer c.Free()

			return os.WriteFile(outputPath(output, args[0], ".flex"), c.Bytes(), 0o644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <file>.flex)")

	return cmd
}

func outputPath(explicit, input, suffix string) string {
	if explicit != "" {
		return explicit
	}

	return input + suffix
}

func describe(v format.Value) string {
	switch v.Kind {
	case format.KindBytes:
		return fmt.Sprintf("bytes(%q)", v.Bytes)
	case format.KindBytesVoid:
		return fmt.Sprintf("bytes-void(%d)", v.VoidLen)
	case format.KindInt:
		return fmt.Sprintf("int(%d)", v.Int)
	case format.KindUint:
		return fmt.Sprintf("uint(%d)", v.Uint)
	case format.KindInt128:
		sign := ""
		if v.Int128Negative {
			sign = "-"
		}

		return fmt.Sprintf("int128(%s%d:%d)", sign, v.Magnitude128.Hi, v.Magnitude128.Lo)
	case format.KindUint128:
		return fmt.Sprintf("uint128(%d:%d)", v.Magnitude128.Hi, v.Magnitude128.Lo)
	case format.KindFloat32:
		return fmt.Sprintf("float32(%v)", v.Float32)
	case format.KindFloat64:
		return fmt.Sprintf("float64(%v)", v.Float64)
	case format.KindPointer:
		return fmt.Sprintf("pointer(%d)", v.Uint)
	case format.KindInternedPointer:
		return fmt.Sprintf("interned-pointer(%d)", v.Uint)
	case format.KindRefID:
		return fmt.Sprintf("ref-id(%d)", v.Uint)
	case format.KindContainer:
		return fmt.Sprintf("container(kind=%d, %d bytes)", v.ContainerKind, len(v.Bytes))
	case format.KindTrue:
		return "true"
	case format.KindFalse:
		return "false"
	case format.KindNull:
		return "null"
	default:
		return "unknown"
	}
}
