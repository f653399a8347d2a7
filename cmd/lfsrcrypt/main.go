package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/lfsrcrypt/cmd/internal"
	"github.com/saylorsolutions/lfsrcrypt/pkg/lfsr"
	"github.com/saylorsolutions/lfsrcrypt/pkg/lfsrcipher"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var (
	version = "dev"

	errUsage = errors.New("usage")
)

type options struct {
	help       bool
	seed       string
	tap        int
	keyFile    string
	bits       int
	out        string
	passphrase string
	salt       string
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, errUsage) {
		return
	}
	if err != nil {
		internal.Fatal("Error: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options
	flags := flag.NewFlagSet("lfsrcrypt", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&opts.help, "help", "h", false, "Prints this usage information.")
	flags.StringVarP(&opts.seed, "seed", "s", "", "Seed register as a string of 0 and 1 characters.")
	flags.IntVarP(&opts.tap, "tap", "k", 0, "Feedback tap index within the seed register, from 0 to len(seed)-1.")
	flags.StringVarP(&opts.keyFile, "key-file", "f", "", "Read the seed and tap from a key file instead of --seed and --tap. Files ending in .yaml or .yml are YAML, others are binary.")
	flags.IntVarP(&opts.bits, "bits", "n", 32, "Number of seed bits to generate with keygen.")
	flags.StringVarP(&opts.out, "out", "o", "", "File to write the generated key to with keygen. The key is printed as YAML if not specified.")
	flags.StringVar(&opts.passphrase, "passphrase", "", "Derive the keygen seed from this passphrase instead of generating it randomly. Uses --tap as the tap.")
	flags.StringVar(&opts.salt, "salt", "", "Salt used with --passphrase.")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stdout, `
lfsrcrypt encrypts and decrypts text with a stream cipher driven by a Linear Feedback Shift Register (LFSR).
Text is limited to the symbols A-Z, a-z, 0-9, + and /, and cipher text uses the same symbols.

USAGE:  lfsrcrypt [FLAGS] encrypt|decrypt [MESSAGE]
        lfsrcrypt [FLAGS] keygen

If MESSAGE is not given, then it's read from stdin with surrounding whitespace removed.

FLAGS:
%s
SECURITY:
    This is not strong encryption! An LFSR keystream is easily recovered given a known piece of plain text.
Use this to obfuscate text, not to protect secrets.

VERSION: %s
`, flags.FlagUsages(), version)
	}
	if len(args) == 0 {
		flags.Usage()
		return errUsage
	}
	if err := flags.Parse(args); err != nil {
		flags.Usage()
		return fmt.Errorf("error parsing flags: %w", err)
	}
	if opts.help {
		flags.Usage()
		return errUsage
	}
	if flags.NArg() == 0 {
		return errors.New("missing required COMMAND argument")
	}

	switch cmd := flags.Arg(0); cmd {
	case "encrypt", "decrypt":
		key, err := loadKey(opts)
		if err != nil {
			return err
		}
		if key.Degenerate() {
			internal.Warn("tap %d is the last register position, so the keystream is all zeros and text will not change", key.Tap)
		}
		return transform(key, flags.Args()[1:], stdin, stdout)
	case "keygen":
		return keygen(opts, flags.Changed("tap"), stdout)
	default:
		return fmt.Errorf("unknown command '%s'", cmd)
	}
}

func loadKey(opts options) (lfsr.Key, error) {
	if len(opts.keyFile) > 0 {
		key, err := lfsr.LoadKeyFile(opts.keyFile)
		if err != nil {
			return lfsr.Key{}, fmt.Errorf("failed to load key file: %w", err)
		}
		return key, nil
	}
	if len(opts.seed) == 0 {
		return lfsr.Key{}, errors.New("either --seed or --key-file is required")
	}
	return lfsr.ParseKey(opts.seed, opts.tap)
}

// transform is the same for both directions, since the cipher is its own inverse.
func transform(key lfsr.Key, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) > 1 {
		return fmt.Errorf("expected a single MESSAGE argument, got %d", len(args))
	}
	if len(args) == 1 {
		result, err := lfsrcipher.EncryptKey(args[0], key)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, result)
		return err
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	r, err := lfsrcipher.NewReader(strings.NewReader(strings.TrimSpace(string(data))), key.Seed, key.Tap)
	if err != nil {
		return err
	}
	result, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(result))
	return err
}

func keygen(opts options, tapGiven bool, stdout io.Writer) error {
	var (
		key lfsr.Key
		err error
	)
	if len(opts.passphrase) > 0 {
		seed, err := lfsr.DeriveSeed([]byte(opts.passphrase), []byte(opts.salt), opts.bits)
		if err != nil {
			return err
		}
		key, err = lfsr.NewKey(seed, opts.tap)
		if err != nil {
			return err
		}
		if key.Degenerate() {
			internal.Warn("tap %d is the last register position, so the keystream is all zeros", key.Tap)
		}
	} else {
		if tapGiven {
			internal.Warn("--tap is ignored when generating a random key")
		}
		key, err = lfsr.GenKey(opts.bits)
		if err != nil {
			return err
		}
	}

	if len(opts.out) > 0 {
		if err := lfsr.SaveKeyFile(opts.out, key); err != nil {
			return fmt.Errorf("failed to write key file: %w", err)
		}
		return nil
	}
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(key); err != nil {
		return err
	}
	return enc.Close()
}
