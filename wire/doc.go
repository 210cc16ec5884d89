// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the bitcoin wire protocol.

For the complete details of the bitcoin protocol, see the official wiki entry
at https://en.bitcoin.it/wiki/Protocol_specification. The following only
serves as a quick overview to provide information on how to use the package.

At a high level, this package provides support for marshalling and
unmarshalling supported bitcoin messages to and from the wire. This package
does not deal with the specifics of message handling such as what to do when
a message is received. This provides the caller with a high level of
flexibility.

Bitcoin Message Overview

The bitcoin protocol consists of exchanging messages between peers. Each
message is preceded by a header which identifies information about it such as
which bitcoin network it is a part of, its type, how big it is, and a checksum
to verify validity. All encoding and decoding of message headers is handled by
this package.

To accomplish this, there is a generic interface for bitcoin messages named
Message which allows messages of any type to be read, written, or passed
around through channels, functions, etc. In addition, concrete implementations
of most of the currently supported bitcoin messages are provided. For these
supported messages, all of the details of marshalling and unmarshalling to and
from the wire using bitcoin encoding are handled so the caller doesn't have to
concern themselves with the specifics.

Message Interaction

The following provides a quick summary of how the bitcoin messages are
intended to interact with one another. As stated above, these interactions are
not directly handled by this package.

The initial handshake consists of two peers sending each other a version
message (MsgVersion) followed by responding with a verack message
(MsgVerAck). Both peers use the information in the version message
(MsgVersion) to negotiate things such as protocol version and supported
services with each other.

	getaddr (MsgGetAddr) is used to request a list of known active peers
	and is answered with an addr message (MsgAddr)

	getblocks (MsgGetBlocks) is used to request a list of block hashes
	and is answered with an inv message (MsgInv)

	getheaders (MsgGetHeaders) is used to request block headers and is
	answered with a headers message (MsgHeaders)

	getdata (MsgGetData) is used to request blocks and transactions by
	their hashes and is answered with block (MsgBlock), tx (MsgTx), or
	notfound (MsgNotFound) messages

	ping (MsgPing) is used to probe a connection and is answered with a
	pong message (MsgPong) echoing the same nonce

Common Parameters

There are several common parameters that arise when using this package to
read and write bitcoin messages. The following sections provide a quick
overview of these parameters so the next sections can build on them.

Protocol Version

The protocol version should be negotiated with the remote peer at a higher
level than this package via the version (MsgVersion) message exchange, however,
this package provides the wire.ProtocolVersion constant which indicates the
latest protocol version this package supports and is typically the value to
use for all outbound connections before a potentially lower protocol version
is negotiated.

Bitcoin Network

The bitcoin network is a magic number which is used to identify the start of a
message and which bitcoin network the message applies to. This package
provides the following constants:

	wire.MainNet
	wire.TestNet3
	wire.RegTest
	wire.SimNet

Determining Message Type

As discussed in the bitcoin message overview section, this package reads
and writes bitcoin messages using a generic interface named Message. In
order to determine the actual concrete type of the message, use a type
switch or type assertion. An example of a type switch follows:

	// Assumes msg is already a valid concrete message such as one created
	// via NewMsgVersion or read via ReadMessage.
	switch msg := msg.(type) {
	case *wire.MsgVersion:
		// The message is a pointer to a MsgVersion struct.
		fmt.Printf("Protocol version: %d", msg.ProtocolVersion)
	case *wire.MsgBlock:
		// The message is a pointer to a MsgBlock struct.
		fmt.Printf("Number of tx in block: %d", len(msg.Transactions))
	}

Reading Messages

In order to unmarshal bitcoin messages from the wire, use the ReadMessage
function. It accepts any io.Reader, but typically this will be a net.Conn to
a remote node running a bitcoin peer. Example syntax is:

	// Reads and validates the next bitcoin message from conn using the
	// protocol version pver and the bitcoin network btcnet. The returns
	// are a wire.Message, a []byte which contains the unmarshalled
	// raw payload, and a possible error.
	msg, rawPayload, err := wire.ReadMessage(conn, pver, btcnet)
	if err != nil {
		// Log and handle the error
	}

Writing Messages

In order to marshal bitcoin messages to the wire, use the WriteMessage
function. It accepts any io.Writer, but typically this will be a net.Conn to
a remote node running a bitcoin peer. Example syntax to request addresses
from a remote peer is:

	// Create a new getaddr bitcoin message.
	msg := wire.NewMsgGetAddr()

	// Writes a bitcoin message msg to conn using the protocol version
	// pver, and the bitcoin network btcnet. The return is a possible
	// error.
	err := wire.WriteMessage(conn, msg, pver, btcnet)
	if err != nil {
		// Log and handle the error
	}

Scanning Byte Streams

The FrameScanner type locates and validates message frames inside an
arbitrary byte stream without requiring the stream to start on a message
boundary. Bytes are handed to the scanner with Append as they arrive, and
Next returns one validated frame at a time, resynchronizing on the network
magic after any garbage or corruption. The raw payload from a frame can then
be decoded into a concrete Message with DecodeMessagePayload.

Errors

Errors returned by this package are either the raw errors provided by
underlying calls to read/write payloads such as io.EOF, io.ErrUnexpectedEOF,
and io.ErrShortWrite, or of type wire.MessageError. This allows the caller to
differentiate between general IO errors and malformed messages through type
assertions.
*/
package wire
