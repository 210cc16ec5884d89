// framegen emits a capture of wire frames, one hex-encoded frame per line,
// with one sample message per protocol command. The output is consumable by
// wiredump --hex, and the --garbage flag prepends random bytes to each frame
// so a scan of the capture also exercises magic resynchronization.
package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/pkg/errors"

	"github.com/goldcrest-btc/goldcrestd/util/chainhash"
	"github.com/goldcrest-btc/goldcrestd/util/panics"
	"github.com/goldcrest-btc/goldcrestd/util/random"
	"github.com/goldcrest-btc/goldcrestd/version"
	"github.com/goldcrest-btc/goldcrestd/wire"
)

const (
	genesisHashStr   = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
	genesisMerkleStr = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
)

func main() {
	defer panics.HandlePanic(log, nil)

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	log.Infof("Version %s", version.Version())
	log.Infof("Generating %s frames", activeNetParams.Name)

	out := os.Stdout
	if cfg.OutFile != "" {
		out, err = os.Create(cfg.OutFile)
		if err != nil {
			panics.Exit(log, fmt.Sprintf("cannot create %s: %s",
				cfg.OutFile, err))
		}
		defer out.Close()
	}

	err = writeCapture(out, cfg.GarbageBytes)
	if err != nil {
		panics.Exit(log, err.Error())
	}
	backendLog.Close()
}

// writeCapture writes one framed sample message per command to w, each
// preceded by a comment line naming the command. When garbage is nonzero,
// that many random bytes are emitted before each frame's header.
func writeCapture(w io.Writer, garbage uint) error {
	msgs, err := sampleMessages()
	if err != nil {
		return err
	}

	for _, msg := range msgs {
		var buf bytes.Buffer
		if garbage > 0 {
			junk, err := randomBytes(garbage)
			if err != nil {
				return err
			}
			buf.Write(junk)
		}
		err = wire.WriteMessage(&buf, msg, wire.ProtocolVersion,
			activeNetParams.Net)
		if err != nil {
			return errors.Wrapf(err, "cannot frame [%s]", msg.Command())
		}
		_, err = fmt.Fprintf(w, "# %s\n%x\n", msg.Command(), buf.Bytes())
		if err != nil {
			return errors.Wrap(err, "write failed")
		}
		log.Infof("[%s] %d bytes", msg.Command(), buf.Len())
	}
	return nil
}

// sampleMessages builds one well-formed message for every protocol command,
// in the order a typical session would see them.
func sampleMessages() ([]wire.Message, error) {
	genesisHash, err := chainhash.NewHashFromStr(genesisHashStr)
	if err != nil {
		return nil, err
	}
	genesisMerkle, err := chainhash.NewHashFromStr(genesisMerkleStr)
	if err != nil {
		return nil, err
	}

	versionNonce, err := random.Uint64()
	if err != nil {
		return nil, err
	}
	pingNonce, err := random.Uint64()
	if err != nil {
		return nil, err
	}

	me := wire.NewNetAddressIPPort(net.ParseIP("127.0.0.1"), 8333,
		wire.SFNodeNetwork)
	you := wire.NewNetAddressIPPort(net.ParseIP("192.0.2.51"), 8333,
		wire.SFNodeNetwork)

	msgAddr := wire.NewMsgAddr()
	err = msgAddr.AddAddress(you)
	if err != nil {
		return nil, err
	}

	msgGetBlocks := wire.NewMsgGetBlocks(&chainhash.Hash{})
	err = msgGetBlocks.AddBlockLocatorHash(genesisHash)
	if err != nil {
		return nil, err
	}

	msgGetHeaders := wire.NewMsgGetHeaders(&chainhash.Hash{})
	err = msgGetHeaders.AddBlockLocatorHash(genesisHash)
	if err != nil {
		return nil, err
	}

	blockVect := wire.NewInvVect(wire.InvTypeBlock, genesisHash)
	msgInv := wire.NewMsgInv()
	err = msgInv.AddInvVect(blockVect)
	if err != nil {
		return nil, err
	}
	msgGetData := wire.NewMsgGetData()
	err = msgGetData.AddInvVect(blockVect)
	if err != nil {
		return nil, err
	}
	msgNotFound := wire.NewMsgNotFound()
	err = msgNotFound.AddInvVect(blockVect)
	if err != nil {
		return nil, err
	}

	tx := sampleTx()
	header := wire.NewBlockHeader(1, genesisHash, genesisMerkle,
		0x1d00ffff, 0x9962e301)
	msgBlock := wire.NewMsgBlock(header)
	err = msgBlock.AddTransaction(tx)
	if err != nil {
		return nil, err
	}

	msgHeaders := wire.NewMsgHeaders()
	err = msgHeaders.AddBlockHeader(header)
	if err != nil {
		return nil, err
	}

	// Rejected command "tx", rejection code 0x10, reason "bad".
	msgReject := wire.NewMsgReject([]byte{
		0x02, 0x74, 0x78,
		0x10,
		0x03, 0x62, 0x61, 0x64,
	})

	return []wire.Message{
		wire.NewMsgVersion(me, you, versionNonce, 0),
		wire.NewMsgVerAck(),
		wire.NewMsgGetAddr(),
		msgAddr,
		wire.NewMsgPing(pingNonce),
		wire.NewMsgPong(pingNonce),
		msgGetBlocks,
		msgInv,
		msgGetData,
		msgNotFound,
		msgBlock,
		tx,
		msgGetHeaders,
		msgHeaders,
		wire.NewMsgMemPool(),
		wire.NewMsgAlert([]byte("sample alert"), []byte("sample signature")),
		msgReject,
	}, nil
}

// sampleTx returns a minimal coinbase-shaped transaction.
func sampleTx() *wire.MsgTx {
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, 0xffffffff)
	txIn := wire.NewTxIn(prevOut, []byte{0x04, 0x31, 0xdc, 0x00, 0x1b})
	txOut := wire.NewTxOut(5000000000, []byte{0x6a}) // OP_RETURN
	tx := wire.NewMsgTx()
	tx.AddTxIn(txIn)
	tx.AddTxOut(txOut)
	return tx
}

// randomBytes returns n bytes drawn from the system entropy source.
func randomBytes(n uint) ([]byte, error) {
	buf := make([]byte, 0, n+8)
	for uint(len(buf)) < n {
		r, err := random.Uint64()
		if err != nil {
			return nil, err
		}
		var chunk [8]byte
		binary.LittleEndian.PutUint64(chunk[:], r)
		buf = append(buf, chunk[:]...)
	}
	return buf[:n], nil
}
