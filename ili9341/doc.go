// Package ili9341 controls an ILI9341 TFT display via SPI.
//
// The ILI9341 is a 240×320 controller with 16-bit RGB565 color. This driver
// writes every drawing call straight to the controller frame memory; there is
// no local framebuffer and Update is a no-op.
//
// # Display Characteristics
//
// - 240×320 pixels, RGB565 (65k colors)
// - Four orientations, width and height swap in the portrait ones
// - Hardware vertical scrolling with fixed top and bottom areas
// - Frame memory readback (ColorAt, Pixel)
// - Sleep, idle and inversion modes
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDI/MOSI    → SPI Data (MOSI)
//	SDO/MISO    → SPI Data (MISO), only needed for readback
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select, or a GPIO set in Opts.CS
//	RESET       → Optional: GPIO for hardware reset
//	LED         → Optional: GPIO for the backlight
//
// # Basic Usage
//
//	host.Init()
//	p, _ := spireg.Open("")
//	dev, err := ili9341.NewSPI(p, gpioreg.ByName("GPIO25"), &ili9341.Opts{
//		RST:         gpioreg.ByName("GPIO24"),
//		Backlight:   gpioreg.ByName("GPIO18"),
//		Orientation: glcd.Portrait90,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Halt()
//	dev.EnableBacklight(true)
//
//	dev.SetBackgroundColor(rgb565.Navy)
//	dev.Clear()
//	dev.SetColor(rgb565.Yellow)
//	dev.FillCircle(glcd.Pt(160, 120), 40)
//
// # Batches
//
// Each primitive holds the bus and keeps CS asserted while it runs. Wrap a
// sequence in Batch to keep them for the whole sequence, for instance when
// another device shares the bus through Opts.Bus:
//
//	release := dev.Batch()
//	dev.DrawRectangle(glcd.Pt(0, 0), 320, 240)
//	fmt.Fprint(dev, "hello")
//	release()
//
// # Errors
//
// Drawing methods do not return errors. The first bus error stops further
// drawing, is returned by Err and by the next control method, and is cleared
// by Init.
package ili9341
