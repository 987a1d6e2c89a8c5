package utils

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	XConn   *xgb.Conn
	XRoot   xproto.Window
	xScreen *xproto.ScreenInfo
)

func InitX11() error {
	var err error
	XConn, err = xgb.NewConn()
	if err != nil {
		return err
	}

	setup := xproto.Setup(XConn)
	xScreen = setup.DefaultScreen(XConn)
	XRoot = xScreen.Root
	return nil
}

func CloseX11() {
	if XConn != nil {
		XConn.Close()
		XConn = nil
	}
}

// RootScreenSize reports the pixel size of the default X11 screen.
func RootScreenSize() (int, int, error) {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, err
		}
	}

	geometry, err := xproto.GetGeometry(XConn, xproto.Drawable(XRoot)).Reply()
	if err != nil {
		return int(xScreen.WidthInPixels), int(xScreen.HeightInPixels), nil
	}

	return int(geometry.Width), int(geometry.Height), nil
}

// CenteredOrigin returns the top-left corner that centers a w x h window on
// a screen of the given size. Windows larger than the screen are pinned to 0.
func CenteredOrigin(screenW, screenH, w, h int) (int, int) {
	x := (screenW - w) / 2
	y := (screenH - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
