// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package raptor

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
)

// testLogger returns a leveled logger for scenario tests. Debug output only
// shows up under "go test -v".
func testLogger(tb testing.TB) *log.Logger {
	tb.Helper()
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "raptor"})
	if testing.Verbose() {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
