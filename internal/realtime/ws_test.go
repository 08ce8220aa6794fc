package realtime

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readTestFrame parses one unmasked server frame off the client side.
func readTestFrame(r io.Reader) (byte, []byte, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, nil, err
	}
	opcode := header[0] & 0x0F
	length := int(header[1] & 0x7F)
	switch length {
	case 126:
		ext := make([]byte, 2)
		if _, err := io.ReadFull(r, ext); err != nil {
			return 0, nil, err
		}
		length = int(binary.BigEndian.Uint16(ext))
	case 127:
		ext := make([]byte, 8)
		if _, err := io.ReadFull(r, ext); err != nil {
			return 0, nil, err
		}
		length = int(binary.BigEndian.Uint64(ext))
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}
	return opcode, payload, nil
}

func TestConcurrentWritesStayFramed(t *testing.T) {
	client, server := net.Pipe()
	c := &Conn{conn: server}

	// broadcasts and pong replies race on the same connection
	const perKind = 8
	var wg sync.WaitGroup
	for i := 0; i < perKind; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = c.WriteJSON(map[string]int{"seq": i})
		}(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.writeFrame(0xA, []byte("keepalive"))
		}()
	}
	go func() {
		wg.Wait()
		server.Close()
	}()

	var texts, pongs int
	for {
		opcode, payload, err := readTestFrame(client)
		if err != nil {
			break
		}
		switch opcode {
		case 0x1:
			var msg map[string]int
			require.NoError(t, json.Unmarshal(payload, &msg), "text payload must be a whole JSON document")
			texts++
		case 0xA:
			require.Equal(t, "keepalive", string(payload))
			pongs++
		default:
			t.Fatalf("unexpected opcode %#x", opcode)
		}
	}
	assert.Equal(t, perKind, texts)
	assert.Equal(t, perKind, pongs)
}

func TestPingGetsPong(t *testing.T) {
	client, server := net.Pipe()
	c := &Conn{conn: server}
	go c.ServeReads()
	defer server.Close()

	// masked client ping carrying "hi"
	frame := append([]byte{0x89, 0x82, 1, 2, 3, 4}, 'h'^1, 'i'^2)
	_, err := client.Write(frame)
	require.NoError(t, err)

	opcode, payload, err := readTestFrame(client)
	require.NoError(t, err)
	assert.Equal(t, byte(0xA), opcode)
	assert.Equal(t, "hi", string(payload))
}

func TestOversizedFrameRejected(t *testing.T) {
	cases := []struct {
		name  string
		frame []byte
	}{
		{"16-bit length", []byte{0x89, 0xFE, 0xFF, 0xFF}},
		{"64-bit length", []byte{0x89, 0xFF, 0, 0, 0, 1, 0, 0, 0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, server := net.Pipe()
			defer client.Close()
			c := &Conn{conn: server}

			go client.Write(tc.frame)

			err := c.readFrame()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "exceeds limit")
		})
	}
}
