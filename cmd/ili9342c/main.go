// Command ili9342c draws on an ILI9342C panel from the command line.
//
// With --sim the commands run against a simulated panel and the frame
// memory is saved as a PNG, so no hardware is needed.
package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers"

	ili9342c "github.com/nwhirschfeld/periph.io-ili9342c"
	"github.com/nwhirschfeld/periph.io-ili9342c/panelsim"
)

var rootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]),
	Short:        "draw on an ILI9342C display",
	Long:         "Draw on an ILI9342C display over SPI, or on a simulated panel with --sim.",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var (
	portFlag     string
	dcFlag       string
	csFlag       string
	rstFlag      string
	blFlag       string
	speedFlag    string
	widthFlag    int
	heightFlag   int
	rotationFlag int
	bufferFlag   int
	simFlag      string
	noInitFlag   bool
)

func init() {
	cobra.EnablePrefixMatching = true
	f := rootCmd.PersistentFlags()
	f.StringVar(&portFlag, `port`, `SPI0.0`, `SPI port name`)
	f.StringVar(&dcFlag, `dc`, `GPIO25`, `data/command pin`)
	f.StringVar(&csFlag, `cs`, ``, `chip select pin, empty when tied low`)
	f.StringVar(&rstFlag, `rst`, `GPIO27`, `reset pin, empty when not wired`)
	f.StringVar(&blFlag, `bl`, `GPIO18`, `backlight pin, empty when not wired`)
	f.StringVar(&speedFlag, `speed`, `40MHz`, `maximum SPI clock`)
	f.IntVar(&widthFlag, `width`, 240, `panel width`)
	f.IntVar(&heightFlag, `height`, 320, `panel height`)
	f.IntVarP(&rotationFlag, `rotation`, `r`, 0, `rotation 0-3, 4-7 mirrored`)
	f.IntVar(&bufferFlag, `buffer`, 0, `resident scratch buffer in bytes, 0 allocates per call`)
	f.StringVar(&simFlag, `sim`, ``, `draw on a simulated panel and save it to this PNG file`)
	f.BoolVar(&noInitFlag, `no-init`, false, `skip the power-on sequence`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run opens the display, initialises it unless --no-init is given, and
// calls fn. Errors are fatal.
func run(fn func(dev *ili9342c.Device) error) {
	dev, done, err := open()
	if err != nil {
		log.Fatal(err)
	}
	if !noInitFlag {
		err = dev.Init()
	}
	if err == nil {
		err = fn(dev)
	}
	if cerr := done(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatal(err)
	}
}

func config() ili9342c.Config {
	return ili9342c.Config{
		Width:      widthFlag,
		Height:     heightFlag,
		Rotation:   drivers.Rotation(rotationFlag),
		BufferSize: bufferFlag,
	}
}

// open returns the device and a function releasing it.
func open() (*ili9342c.Device, func() error, error) {
	if simFlag != "" {
		return openSim(simFlag)
	}
	if _, err := host.Init(); err != nil {
		return nil, nil, err
	}
	var speed physic.Frequency
	if err := speed.Set(speedFlag); err != nil {
		return nil, nil, fmt.Errorf("--speed: %w", err)
	}
	cfg := config()
	var err error
	if cfg.CS, err = pin(csFlag); err != nil {
		return nil, nil, err
	}
	if cfg.Reset, err = pin(rstFlag); err != nil {
		return nil, nil, err
	}
	if cfg.Backlight, err = pin(blFlag); err != nil {
		return nil, nil, err
	}
	dc, err := pin(dcFlag)
	if err != nil {
		return nil, nil, err
	}
	p, err := spireg.Open(portFlag)
	if err != nil {
		return nil, nil, err
	}
	if err := p.LimitSpeed(speed); err != nil {
		p.Close()
		return nil, nil, err
	}
	dev, err := ili9342c.NewSPI(p, dc, cfg)
	if err != nil {
		p.Close()
		return nil, nil, err
	}
	return dev, p.Close, nil
}

func pin(name string) (gpio.PinOut, error) {
	if name == "" {
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("unknown pin %q", name)
	}
	return p, nil
}

// instant is a clock for the simulator; the panel needs no settle time.
type instant struct{}

func (instant) Sleep(time.Duration) {}

func openSim(path string) (*ili9342c.Device, func() error, error) {
	dc := &gpiotest.Pin{N: "DC"}
	panel := panelsim.New(widthFlag, heightFlag, dc, nil)
	cfg := config()
	cfg.Clock = instant{}
	dev, err := ili9342c.New(panel, dc, cfg)
	if err != nil {
		return nil, nil, err
	}
	save := func() error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, panel.Image()); err != nil {
			f.Close()
			return err
		}
		log.Printf("%s: %d transfers, %d windows", path, len(panel.Ops), len(panel.Windows))
		return f.Close()
	}
	return dev, save, nil
}
