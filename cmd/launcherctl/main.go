package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/seagrayinc/rocketbaby/internal/hid"
	"github.com/seagrayinc/rocketbaby/internal/launcher"
	"github.com/seagrayinc/rocketbaby/internal/rawusb"
)

// Build identity, overridable with -ldflags at release time.
var (
	programName = "launcherctl"
	version     = "dev"
	bugAddress  = "bugs@seagrayinc.com"
)

type cli struct {
	Move      string           `short:"m" placeholder:"DIR" help:"Move the turret in the requested direction. Must be one of up, down, left, or right."`
	Time      uint64           `short:"t" placeholder:"MS" default:"100" help:"The duration for moving the requested direction, in milliseconds (below 10000)."`
	Fire      bool             `short:"f" help:"Fire the turret."`
	Status    bool             `short:"p" help:"Print out status information."`
	Transport string           `default:"hid" enum:"hid,usb" help:"Device access method: platform HID stack or raw libusb."`
	LogLevel  string           `default:"info" enum:"debug,info,warn,error" help:"Log verbosity."`
	Version   kong.VersionFlag `short:"V" help:"Print version information and quit."`
}

func main() {
	var args cli
	kctx := kong.Parse(&args,
		kong.Name(programName),
		kong.Description("USB missile launcher application for Dream Cheeky's Rocket Baby device. Report bugs to <"+bugAddress+">."),
		kong.UsageOnError(),
		kong.Vars{"version": programName + " " + version},
	)
	kctx.FatalIfErrorf(run(&args))
}

func run(args *cli) error {
	setupLogger(args.LogLevel)

	intent, err := buildIntent(args)
	if err != nil {
		return err
	}

	// Ctrl-C during the fire polling loop aborts between polls; the
	// device's physical state is then unresolved.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := openDevice(args.Transport)
	if err != nil {
		return fmt.Errorf("open launcher: %w", err)
	}
	defer dev.Close()

	ctl := launcher.NewController(dev)
	status, err := ctl.Execute(ctx, intent)
	if err != nil {
		return err
	}
	if status != nil {
		printStatus(os.Stdout, *status)
	}
	return nil
}

func buildIntent(args *cli) (launcher.Intent, error) {
	var intent launcher.Intent

	if args.Move != "" {
		dir, err := launcher.ParseDirection(args.Move)
		if err != nil {
			return launcher.Intent{}, err
		}
		mv, err := launcher.NewMovement(dir, args.Time)
		if err != nil {
			return launcher.Intent{}, err
		}
		intent.Movement = &mv
	}

	intent.Fire = args.Fire
	intent.ShowStatus = args.Status
	return intent, nil
}

func openDevice(transport string) (hid.Device, error) {
	if transport == "usb" {
		return rawusb.Open(launcher.VendorID, launcher.ProductID)
	}
	mgr, err := hid.NewManager()
	if err != nil {
		return nil, err
	}
	return mgr.OpenVIDPID(launcher.VendorID, launcher.ProductID)
}

func printStatus(w io.Writer, s launcher.StatusFlags) {
	fmt.Fprintf(w, "Tilt up limit:      %t\n", s.TiltUpLimit)
	fmt.Fprintf(w, "Tilt down limit:    %t\n", s.TiltDownLimit)
	fmt.Fprintf(w, "Pan left limit:     %t\n", s.PanLeftLimit)
	fmt.Fprintf(w, "Pan right limit:    %t\n", s.PanRightLimit)
	fmt.Fprintf(w, "Fire complete:      %t\n", s.FireComplete)
}

func setupLogger(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
