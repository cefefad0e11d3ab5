package audio

import (
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"
)

func header(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: name,
		Header:   h,
		Size:     size,
	}
}

func TestValidateAudioFile(t *testing.T) {
	tests := []struct {
		name    string
		fh      *multipart.FileHeader
		wantErr bool
	}{
		{"valid mp3", header("song.mp3", "audio/mpeg", 1024), false},
		{"valid wav", header("clip.wav", "audio/wav", 1024), false},
		{"valid m4a", header("talk.m4a", "audio/x-m4a", 1024), false},
		{"mime with params", header("song.mp3", "audio/mpeg; rate=44100", 1024), false},
		{"uppercase extension", header("SONG.MP3", "audio/mpeg", 1024), false},
		{"bad extension", header("notes.txt", "audio/mpeg", 1024), true},
		{"bad mime", header("song.mp3", "application/pdf", 1024), true},
		{"too large", header("song.mp3", "audio/mpeg", MaxAudioSize+1), true},
		{"no extension", header("song", "audio/mpeg", 1024), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAudioFile(tc.fh)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateAudioFile() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestGenerateFilename(t *testing.T) {
	got := GenerateFilename("My Song.MP3")
	if filepath.Ext(got) != ".mp3" {
		t.Fatalf("extension = %q, want .mp3", filepath.Ext(got))
	}
	if strings.Contains(got, " ") {
		t.Fatalf("generated name %q contains spaces", got)
	}
	// names must not collide across calls
	if again := GenerateFilename("My Song.MP3"); again == got {
		t.Fatalf("two generated names collided: %q", got)
	}
}
