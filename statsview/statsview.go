//go:build statsview

// This file is part of Nest.
//
// Nest is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nest is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nest.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/Astral-C/nest/logger"
)

// Address of the statistics server.
const Address = "localhost:12600"

const path = "/debug/statsview"

// URL of the graphical statistics page.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, path)
}

// Launch the statistics server in a new goroutine. The URL of the page is
// written to output and to the central log.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	logger.Logf(logger.Allow, "statsview", "serving on %s", Address)
	fmt.Fprintf(output, "stats server available at %s\n", URL())
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
