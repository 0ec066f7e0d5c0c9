/*

Package logger provides logging functionality to a convey app by defining the required behavior in [Logger]
and providing an implementation of it with [ConveyLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [ConveyLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*ConveyLogger.Warn], [*ConveyLogger.Error], and [*ConveyLogger.Fatal] produce messages.

# ConveyLogger

The [ConveyLogger] provides all the logging functionality needed for a convey app.
It is the implementation of [Logger] returned by the [New] function.

Log messages emitted by [ConveyLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2022/04/28 15:55:21 [ERROR] serve/serve.go:83 'invalid: bad header' log_context: "{"error":"invalid: bad header"}"

The file, line number, and parent directory of where a [ConveyLogger] logged comprise the call site.
The message is the actual string passed into the [ConveyLogger] method.
Lastly, the log context is a JSON-encoded [*LogContext].
The last component allows for including additional data inessential to the message proper,
but provides a fuller picture of the application state at the time of logging.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
