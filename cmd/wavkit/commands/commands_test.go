// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/formats/wav"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	globalConfig = nil
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	resetFlags(rootCmd)
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)

	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func inspectFile(t *testing.T, path string) *wav.Info {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	info, err := wav.Inspect(f)
	require.NoError(t, err)
	return info
}

func writeWAV(t *testing.T, path string, buf *audio.Buffer) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, wav.Encode(buf), 0o600))
}

func TestTone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.wav")

	out, err := runCmd(t, "tone", "-o", path, "--frequency", "1000", "--duration", "100ms", "--rate", "8000")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	info := inspectFile(t, path)
	assert.Equal(t, uint16(wav.AudioFormatPCM), info.Format.AudioFormat)
	assert.Equal(t, uint32(8000), info.Format.SampleRate)
	assert.Equal(t, uint16(1), info.Format.NumChannels)
	assert.Equal(t, 800, info.Frames)
}

func TestTone_Companded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.wav")

	_, err := runCmd(t, "tone", "-o", path, "--duration", "10ms", "--rate", "8000", "--channels", "2", "--encoding", "ulaw")
	require.NoError(t, err)

	info := inspectFile(t, path)
	assert.Equal(t, uint16(wav.AudioFormatMULaw), info.Format.AudioFormat)
	assert.Equal(t, uint16(2), info.Format.NumChannels)
	assert.Equal(t, 80, info.Frames)
}

func TestTone_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := runCmd(t, "tone", "--duration", "10ms")
	assert.ErrorContains(t, err, "output file is required")

	_, err = runCmd(t, "tone", "-o", filepath.Join(dir, "x.wav"), "--frequency", "-5")
	assert.ErrorContains(t, err, "invalid tone frequency")

	_, err = runCmd(t, "tone", "-o", filepath.Join(dir, "x.wav"), "--encoding", "mp3")
	assert.ErrorContains(t, err, "unknown output encoding")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "wavkit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
output:
  encoding: alaw
tone:
  duration: 50ms
  sample_rate: 8000
`), 0o600))

	path := filepath.Join(dir, "beep.wav")
	_, err := runCmd(t, "--config", cfgPath, "tone", "-o", path)
	require.NoError(t, err)

	info := inspectFile(t, path)
	assert.Equal(t, uint16(wav.AudioFormatALaw), info.Format.AudioFormat)
	assert.Equal(t, 400, info.Frames)

	// flags win over the file
	_, err = runCmd(t, "--config", cfgPath, "tone", "-o", path, "--encoding", "pcm16", "--duration", "10ms")
	require.NoError(t, err)

	info = inspectFile(t, path)
	assert.Equal(t, uint16(wav.AudioFormatPCM), info.Format.AudioFormat)
	assert.Equal(t, 80, info.Frames)

	_, err = runCmd(t, "--config", filepath.Join(dir, "missing.yaml"), "tone", "-o", path)
	assert.ErrorContains(t, err, "config not available")
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")

	src := audio.NewBuffer(16000, 2, 1600)
	for i := range 1600 {
		src.Channels[0][i] = 0.25
		src.Channels[1][i] = -0.25
	}
	writeWAV(t, in, src)

	out := filepath.Join(dir, "nested", "out.wav")
	stdout, err := runCmd(t, "convert", in, "-o", out, "--rate", "8000", "--mono")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote "+out)

	info := inspectFile(t, out)
	assert.Equal(t, uint32(8000), info.Format.SampleRate)
	assert.Equal(t, uint16(1), info.Format.NumChannels)
	assert.InDelta(t, 800, info.Frames, 20)
}

func TestConvert_CompandedInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "beep.wav")

	_, err := runCmd(t, "tone", "-o", in, "--duration", "10ms", "--rate", "8000", "--channels", "2", "--encoding", "ulaw")
	require.NoError(t, err)

	out := filepath.Join(dir, "pcm.wav")
	_, err = runCmd(t, "convert", in, "-o", out, "--mono")
	require.NoError(t, err)

	info := inspectFile(t, out)
	assert.Equal(t, uint16(wav.AudioFormatPCM), info.Format.AudioFormat)
	assert.Equal(t, uint32(8000), info.Format.SampleRate)
	assert.Equal(t, uint16(1), info.Format.NumChannels)
	assert.Equal(t, 80, info.Frames)
}

func TestConvert_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := runCmd(t, "convert", filepath.Join(dir, "song.flac"), "-o", filepath.Join(dir, "out.wav"))
	assert.ErrorContains(t, err, "unknown audio format")

	_, err = runCmd(t, "convert", filepath.Join(dir, "in.wav"))
	assert.ErrorContains(t, err, "output file is required")

	_, err = runCmd(t, "convert", "-o", filepath.Join(dir, "out.wav"))
	assert.Error(t, err, "input argument is required")
}

func TestInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeWAV(t, path, audio.NewBuffer(8000, 2, 8000))

	out, err := runCmd(t, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PCM (1)")
	assert.Contains(t, out, "8000 Hz")
	assert.Contains(t, out, "Duration:")
	assert.Contains(t, out, "1s")
	assert.Contains(t, out, "fmt , data")

	out, err = runCmd(t, "info", path, "--json")
	require.NoError(t, err)

	var got infoOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "PCM", got.AudioFormat)
	assert.Equal(t, uint16(2), got.Channels)
	assert.Equal(t, uint32(32000), got.DataSize)
	assert.Equal(t, 8000, got.Frames)
	assert.Equal(t, int64(1000), got.DurationMS)
}

func TestInfo_TruncatedData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.wav")
	data := wav.Encode(audio.NewBuffer(8000, 1, 3))
	data[40], data[41], data[42], data[43] = 0xF0, 0xFF, 0xFF, 0x7F
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err := runCmd(t, "info", path)
	assert.ErrorIs(t, err, wav.ErrTruncatedDataChunk)
}

func TestInfo_NotWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not RIFF"), 0o600))

	_, err := runCmd(t, "info", path)
	assert.ErrorIs(t, err, wav.ErrNotWavFile)
}

func TestBatch_YAML(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "in.wav"), audio.NewBuffer(8000, 2, 400))

	manifest := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
jobs:
  - name: beep
    type: tone
    output: out/beep.wav
    frequency: 1000
    duration: 20ms
    sample_rate: 8000
  - name: downmix
    type: convert
    input: in.wav
    output: out/mono.wav
    mono: true
    encoding: alaw
`), 0o600))

	out, err := runCmd(t, "batch", "-f", manifest)
	require.NoError(t, err)
	assert.Contains(t, out, "2 jobs, 0 failed")

	beep := inspectFile(t, filepath.Join(dir, "out", "beep.wav"))
	assert.Equal(t, 160, beep.Frames)

	mono := inspectFile(t, filepath.Join(dir, "out", "mono.wav"))
	assert.Equal(t, uint16(wav.AudioFormatALaw), mono.Format.AudioFormat)
	assert.Equal(t, uint16(1), mono.Format.NumChannels)
	assert.Equal(t, 400, mono.Frames)
}

func TestBatch_Failures(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "jobs.json")
	require.NoError(t, os.WriteFile(manifest, []byte(`{"jobs": [
		{"name": "noise", "type": "noise", "output": "noise.wav"},
		{"name": "ok", "type": "tone", "output": "ok.wav", "duration": "10ms"}
	]}`), 0o600))

	out, err := runCmd(t, "batch", "-f", manifest)
	assert.ErrorContains(t, err, "unknown job type")
	assert.Contains(t, out, "2 jobs, 1 failed")
	assert.NoFileExists(t, filepath.Join(dir, "ok.wav"), "batch stops at the first failure")

	out, err = runCmd(t, "batch", "-f", manifest, "--keep-going")
	assert.ErrorContains(t, err, "noise")
	assert.Contains(t, out, "ok    ok")
	assert.FileExists(t, filepath.Join(dir, "ok.wav"))

	_, err = runCmd(t, "batch")
	assert.ErrorContains(t, err, "manifest file is required")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("jobs: []\n"), 0o600))
	_, err = runCmd(t, "batch", "-f", empty)
	assert.ErrorContains(t, err, "no jobs")
}

func TestLoadRequest(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data string
	}{
		{"jobs.yaml", "jobs:\n  - type: tone\n    output: a.wav\n"},
		{"jobs.json", `{"jobs": [{"type": "tone", "output": "a.wav"}]}`},
		{"jobs.manifest", "jobs:\n  - type: tone\n    output: a.wav\n"},
	}

	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o600))

		var m batchManifest
		require.NoError(t, loadRequest(path, &m), tt.name)
		require.Len(t, m.Jobs, 1, tt.name)
		assert.Equal(t, "tone", m.Jobs[0].Type, tt.name)
		assert.Equal(t, "a.wav", m.Jobs[0].Output, tt.name)
	}

	var m batchManifest
	assert.Error(t, loadRequest(filepath.Join(dir, "missing.yaml"), &m))
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.in), "formatBytes(%d)", tt.in)
	}
}
