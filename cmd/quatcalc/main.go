// quatcalc is a CLI utility for quaternion algebra: building rotation
// quaternions from Euler angles and evaluating quaternion arithmetic.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/quaternion"
	"github.com/Faultbox/quaternion/internal/config"
	"github.com/Faultbox/quaternion/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "euler":
		cmdEuler(cfg, rest)
	case "add", "sub", "mul", "div":
		cmdBinary(cfg, command, rest)
	case "inv", "conj":
		cmdUnary(cfg, command, rest)
	case "len":
		cmdLen(rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func cmdEuler(cfg *config.Config, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: quatcalc euler <x> <y> <z>")
		os.Exit(1)
	}

	x := parseScalar(args[0])
	y := parseScalar(args[1])
	z := parseScalar(args[2])

	if cfg.Output.Degrees {
		x *= math.Pi / 180
		y *= math.Pi / 180
		z *= math.Pi / 180
	}

	logger.Debug("euler input",
		zap.Float64("x", x), zap.Float64("y", y), zap.Float64("z", z))

	fmt.Println(formatQuat(cfg, quaternion.FromEulerAngles(x, y, z)))
}

func cmdBinary(cfg *config.Config, op string, args []string) {
	if len(args) != 8 {
		fmt.Fprintf(os.Stderr, "Usage: quatcalc %s <w x y z> <w x y z>\n", op)
		os.Exit(1)
	}

	a := parseQuat(args[0:4])
	b := parseQuat(args[4:8])

	logger.Debug("binary operation", zap.String("op", op))

	var result quaternion.Quaternion[float64]
	switch op {
	case "add":
		result = a.Add(b)
	case "sub":
		result = a.Sub(b)
	case "mul":
		result = a.Mul(b)
	case "div":
		result = a.Div(b)
	}

	fmt.Println(formatQuat(cfg, result))
}

func cmdUnary(cfg *config.Config, op string, args []string) {
	if len(args) != 4 {
		fmt.Fprintf(os.Stderr, "Usage: quatcalc %s <w x y z>\n", op)
		os.Exit(1)
	}

	q := parseQuat(args)

	var result quaternion.Quaternion[float64]
	switch op {
	case "inv":
		result = q.Inverse()
	case "conj":
		result = q.Conjugate()
	}

	fmt.Println(formatQuat(cfg, result))
}

func cmdLen(args []string) {
	if len(args) != 4 {
		fmt.Fprintln(os.Stderr, "Usage: quatcalc len <w x y z>")
		os.Exit(1)
	}

	q := parseQuat(args)
	fmt.Printf("length: %v\nsquare length: %v\n", q.Length(), q.SquareLength())
}

// parseQuat parses four scalar arguments as (w, x, y, z).
func parseQuat(args []string) quaternion.Quaternion[float64] {
	return quaternion.New(
		parseScalar(args[0]),
		parseScalar(args[1]),
		parseScalar(args[2]),
		parseScalar(args[3]),
	)
}

func parseScalar(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid number %q\n", s)
		os.Exit(1)
	}
	return v
}

func formatQuat(cfg *config.Config, q quaternion.Quaternion[float64]) string {
	p := cfg.Output.Precision
	return fmt.Sprintf("(%.*f, %.*f, %.*f, %.*f)", p, q.W, p, q.X, p, q.Y, p, q.Z)
}

func printUsage() {
	fmt.Println(`quatcalc - quaternion algebra utility

Usage:
  quatcalc [flags] <command> [arguments]

Commands:
  euler <x> <y> <z>            Rotation quaternion from euler angles (radians)
  add <w x y z> <w x y z>      Component-wise sum
  sub <w x y z> <w x y z>      Component-wise difference
  mul <w x y z> <w x y z>      Hamilton product (order matters)
  div <w x y z> <w x y z>      Right-division: a times inverse(b)
  inv <w x y z>                Multiplicative inverse
  conj <w x y z>               Conjugate
  len <w x y z>                Length and square length

Flags:
  -config <path>     Config file (default: quatcalc.yaml)
  -precision <n>     Decimal places in output
  -degrees           Interpret euler angles as degrees
  -debug             Enable debug logging
  -log-file <path>   Write logs to a rotating file

Examples:
  quatcalc euler 3.14159 0 0
  quatcalc -degrees euler 90 0 0
  quatcalc mul 1 2 3 4  5 6 7 8
  quatcalc div -60 12 30 24  5 6 7 8`)
}
