package debugger

import "github.com/RefikCodes/raptorex-gcode/config"

// TraceContextLines is the default number of trace entries shown
// before and after the cursor in the "list" command and the TUI's
// trace view.
const TraceContextLines = 5

// defaultHistorySize mirrors config.Config's own default for
// Debugger.HistorySize, so a debugger started without an explicit
// config still gets the same command-history capacity one would.
var defaultHistorySize = config.DefaultConfig().Debugger.HistorySize
