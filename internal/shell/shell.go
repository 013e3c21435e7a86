// Package shell opens filesystem locations in Windows Explorer through the
// Shell.Application COM object.
package shell

import (
	"fmt"
	"strings"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// OpenFolder shows the given directory in an Explorer window.
func OpenFolder(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("no folder to open")
	}

	ole.CoInitialize(0)
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Shell.Application")
	if err != nil {
		return fmt.Errorf("failed to create Shell object: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("failed to get IDispatch interface: %w", err)
	}
	defer shell.Release()

	if _, err := oleutil.CallMethod(shell, "Open", path); err != nil {
		return fmt.Errorf("failed to open folder: %w", err)
	}

	return nil
}
