// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/pkg/errors"
)

// MsgReject implements the Message interface and represents a bitcoin reject
// message, sent by a peer to indicate a previous message was rejected.
//
// The reject payload is deliberately carried as opaque bytes rather than
// parsed into structured fields (command, code, reason, extra data). Nothing
// in this codebase acts on the contents, so the bytes are preserved verbatim
// for callers that want to log or inspect them.
type MsgReject struct {
	// RawPayload is the reject payload exactly as it appeared on the wire.
	RawPayload []byte
}

// BtcDecode decodes r using the bitcoin protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgReject) BtcDecode(r io.Reader, pver uint32) error {
	payload, err := io.ReadAll(io.LimitReader(r, MaxMessagePayload))
	if err != nil {
		return errors.WithStack(err)
	}
	msg.RawPayload = payload
	return nil
}

// BtcEncode encodes the receiver to w using the bitcoin protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgReject) BtcEncode(w io.Writer, pver uint32) error {
	_, err := w.Write(msg.RawPayload)
	return errors.WithStack(err)
}

// Command returns the protocol command string for the message. This is part
// of the Message interface implementation.
func (msg *MsgReject) Command() string {
	return CmdReject
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver. This is part of the Message interface implementation.
func (msg *MsgReject) MaxPayloadLength(pver uint32) uint32 {
	return MaxMessagePayload
}

// NewMsgReject returns a new bitcoin reject message carrying the given raw
// payload bytes. See MsgReject for details.
func NewMsgReject(rawPayload []byte) *MsgReject {
	return &MsgReject{
		RawPayload: rawPayload,
	}
}
