// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"

	"github.com/goldcrest-btc/goldcrestd/util/chainhash"
)

// MaxBlockLocatorsPerMsg is the maximum number of block locator hashes allowed
// per message.
const MaxBlockLocatorsPerMsg = 500

// MsgGetBlocks implements the Message interface and represents a bitcoin
// getblocks message. It is used to request a list of blocks starting after the
// last known hash in the slice of block locator hashes. The list is returned
// via an inv message (MsgInv) and is limited by a specific hash to stop at or
// the maximum number of blocks per message, which is currently 500.
//
// Set the HashStop field to the hash at which to stop and use
// AddBlockLocatorHash to build up the list of block locator hashes.
//
// The algorithm for building the block locator hashes should be to add the
// hashes in reverse order until you reach the genesis block. In order to keep
// the list of locator hashes to a reasonable number of entries, first add the
// most recent 10 block hashes, then double the step each loop iteration to
// exponentially decrease the number of hashes the further away from head and
// closer to the genesis block you get.
type MsgGetBlocks struct {
	ProtocolVersion    uint32
	BlockLocatorHashes []*chainhash.Hash
	HashStop           chainhash.Hash
}

// AddBlockLocatorHash adds a new block locator hash to the message.
func (msg *MsgGetBlocks) AddBlockLocatorHash(hash *chainhash.Hash) error {
	if len(msg.BlockLocatorHashes)+1 > MaxBlockLocatorsPerMsg {
		str := fmt.Sprintf("too many block locator hashes for message [max %d]",
			MaxBlockLocatorsPerMsg)
		return messageError("MsgGetBlocks.AddBlockLocatorHash", str)
	}

	msg.BlockLocatorHashes = append(msg.BlockLocatorHashes, hash)
	return nil
}

// BtcDecode decodes r using the bitcoin protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgGetBlocks) BtcDecode(r io.Reader, pver uint32) error {
	return readBlockLocatorPayload(r, pver, &msg.ProtocolVersion,
		&msg.BlockLocatorHashes, &msg.HashStop)
}

// BtcEncode encodes the receiver to w using the bitcoin protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgGetBlocks) BtcEncode(w io.Writer, pver uint32) error {
	return writeBlockLocatorPayload(w, pver, "getblocks",
		msg.ProtocolVersion, msg.BlockLocatorHashes, &msg.HashStop)
}

// Command returns the protocol command string for the message. This is part
// of the Message interface implementation.
func (msg *MsgGetBlocks) Command() string {
	return CmdGetBlocks
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver. This is part of the Message interface implementation.
func (msg *MsgGetBlocks) MaxPayloadLength(pver uint32) uint32 {
	// Protocol version 4 bytes + num hashes (varInt) + max block locator
	// hashes + hash stop.
	return 4 + MaxVarIntPayload + (MaxBlockLocatorsPerMsg *
		chainhash.HashSize) + chainhash.HashSize
}

// NewMsgGetBlocks returns a new bitcoin getblocks message that conforms to the
// Message interface using the passed parameters and defaults for the remaining
// fields. A nil hashStop is taken to mean "no stop hash" and leaves the field
// as the zero hash.
func NewMsgGetBlocks(hashStop *chainhash.Hash) *MsgGetBlocks {
	msg := &MsgGetBlocks{
		ProtocolVersion:    ProtocolVersion,
		BlockLocatorHashes: make([]*chainhash.Hash, 0, MaxBlockLocatorsPerMsg),
	}
	if hashStop != nil {
		msg.HashStop = *hashStop
	}
	return msg
}

// readBlockLocatorPayload reads the shared block locator layout used by the
// getblocks and getheaders messages: a protocol version, a varint count of
// block locator hashes capped at MaxBlockLocatorsPerMsg, the hashes
// themselves, and a stop hash. A remote peer can declare any count it likes;
// only the first MaxBlockLocatorsPerMsg hashes are read and the rest of the
// declared count is ignored.
func readBlockLocatorPayload(r io.Reader, pver uint32, protocolVersion *uint32,
	locatorHashes *[]*chainhash.Hash, hashStop *chainhash.Hash) error {

	err := ReadElement(r, protocolVersion)
	if err != nil {
		return err
	}

	count, err := ReadVarInt(r, pver)
	if err != nil {
		return err
	}
	if count > MaxBlockLocatorsPerMsg {
		count = MaxBlockLocatorsPerMsg
	}

	// Create a contiguous slice of hashes to deserialize into in order to
	// reduce the number of allocations.
	locators := make([]chainhash.Hash, count)
	*locatorHashes = make([]*chainhash.Hash, 0, count)
	for i := uint64(0); i < count; i++ {
		hash := &locators[i]
		err := ReadElement(r, hash)
		if err != nil {
			return err
		}
		*locatorHashes = append(*locatorHashes, hash)
	}

	return ReadElement(r, hashStop)
}

// writeBlockLocatorPayload writes the shared block locator layout used by the
// getblocks and getheaders messages. See readBlockLocatorPayload.
func writeBlockLocatorPayload(w io.Writer, pver uint32, msgName string,
	protocolVersion uint32, locatorHashes []*chainhash.Hash,
	hashStop *chainhash.Hash) error {

	count := len(locatorHashes)
	if count > MaxBlockLocatorsPerMsg {
		str := fmt.Sprintf("too many block locator hashes for message "+
			"[count %d, max %d]", count, MaxBlockLocatorsPerMsg)
		return messageError("Msg"+msgName+".BtcEncode", str)
	}

	err := WriteElement(w, protocolVersion)
	if err != nil {
		return err
	}

	err = WriteVarInt(w, pver, uint64(count))
	if err != nil {
		return err
	}

	for _, hash := range locatorHashes {
		err := WriteElement(w, hash)
		if err != nil {
			return err
		}
	}

	return WriteElement(w, hashStop)
}
