package scanner

import (
	"bytes"
	"context"
	"debug/elf"
	"debug/macho"
	"debug/pe"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// headerSize is how much of each file is read for magic byte detection
const headerSize = 512

// Magic bytes for binary detection
var (
	// ELF objects start with 0x7F 'E' 'L' 'F'
	elfMagic = []byte{0x7F, 'E', 'L', 'F'}

	// PE images start with a DOS stub; the PE signature sits at e_lfanew
	dosMagic    = []byte("MZ")
	peSignature = []byte("PE\x00\x00")
)

// Java class files share 0xCAFEBABE with universal binaries; a real fat
// header carries a small architecture count where Java has its version.
const maxFatArches = 20

// DetectFormat determines the binary format from the leading bytes of a file
func DetectFormat(header []byte) BinaryFormat {
	if bytes.HasPrefix(header, elfMagic) {
		return FormatELF
	}

	if len(header) >= 4 {
		magic := binary.BigEndian.Uint32(header[:4])
		switch magic {
		case macho.Magic32, macho.Magic64, 0xCEFAEDFE, 0xCFFAEDFE:
			return FormatMachO
		case macho.MagicFat:
			if len(header) >= 8 {
				n := binary.BigEndian.Uint32(header[4:8])
				if n > 0 && n < maxFatArches {
					return FormatMachOUniversal
				}
			}
			return FormatUnknown
		}
	}

	// PE: e_lfanew is a little-endian offset at 0x3C
	if bytes.HasPrefix(header, dosMagic) && len(header) >= 0x40 {
		off := int(binary.LittleEndian.Uint32(header[0x3C:0x40]))
		if off > 0 && off+len(peSignature) <= len(header) &&
			bytes.Equal(header[off:off+len(peSignature)], peSignature) {
			return FormatPE
		}
	}

	return FormatUnknown
}

// hasPESignatureAt looks for the PE signature at e_lfanew in r, for DOS
// stubs whose e_lfanew points past the header buffer
func hasPESignatureAt(r io.ReaderAt, header []byte) bool {
	if !bytes.HasPrefix(header, dosMagic) || len(header) < 0x40 {
		return false
	}
	off := int64(binary.LittleEndian.Uint32(header[0x3C:0x40]))
	if off <= 0 {
		return false
	}
	sig := make([]byte, len(peSignature))
	if _, err := r.ReadAt(sig, off); err != nil {
		return false
	}
	return bytes.Equal(sig, peSignature)
}

// MagicClassifier classifies files by reading their magic bytes directly
type MagicClassifier struct{}

// NewMagicClassifier creates a new magic byte classifier
func NewMagicClassifier() *MagicClassifier {
	return &MagicClassifier{}
}

// Classify implements Classifier
func (c *MagicClassifier) Classify(_ context.Context, path string) (Classification, error) {
	f, err := os.Open(path)
	if err != nil {
		return Classification{}, err
	}
	defer f.Close()

	// Read first 512 bytes for magic byte detection
	header := make([]byte, headerSize)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if errors.Is(err, io.EOF) {
			// Empty file
			return Classification{}, nil
		}
		return Classification{}, err
	}
	header = header[:n]

	format := DetectFormat(header)
	if format == FormatUnknown && hasPESignatureAt(f, header) {
		format = FormatPE
	}
	if format == FormatUnknown {
		return Classification{}, nil
	}

	return Classification{Format: format, Detail: describe(f, format)}, nil
}

// describe builds a detail string using the debug/* parsers. Files that
// carry the right magic but fail to parse still count as binaries; they
// just get the bare format name.
func describe(r io.ReaderAt, format BinaryFormat) string {
	switch format {
	case FormatELF:
		f, err := elf.NewFile(r)
		if err != nil {
			return format.String()
		}
		return fmt.Sprintf("ELF %s %s, %s", elfBits(f.Class), elfKind(f.Type),
			strings.TrimPrefix(f.Machine.String(), "EM_"))
	case FormatMachO:
		f, err := macho.NewFile(r)
		if err != nil {
			return format.String()
		}
		bits := "32-bit"
		if f.Magic == macho.Magic64 {
			bits = "64-bit"
		}
		return fmt.Sprintf("Mach-O %s %s, %s", bits, machoKind(f.Type),
			strings.TrimPrefix(f.Cpu.String(), "Cpu"))
	case FormatMachOUniversal:
		f, err := macho.NewFatFile(r)
		if err != nil {
			return format.String()
		}
		cpus := make([]string, 0, len(f.Arches))
		for _, arch := range f.Arches {
			cpus = append(cpus, strings.TrimPrefix(arch.Cpu.String(), "Cpu"))
		}
		return fmt.Sprintf("Mach-O universal binary with %d architectures: %s",
			len(f.Arches), strings.Join(cpus, ", "))
	case FormatPE:
		f, err := pe.NewFile(r)
		if err != nil {
			return format.String()
		}
		kind := "PE32"
		if _, ok := f.OptionalHeader.(*pe.OptionalHeader64); ok {
			kind = "PE32+"
		}
		if f.Characteristics&pe.IMAGE_FILE_DLL != 0 {
			return kind + " DLL"
		}
		return kind + " executable"
	default:
		return ""
	}
}

func elfBits(class elf.Class) string {
	if class == elf.ELFCLASS64 {
		return "64-bit"
	}
	return "32-bit"
}

func elfKind(t elf.Type) string {
	switch t {
	case elf.ET_EXEC:
		return "executable"
	case elf.ET_DYN:
		return "shared object"
	case elf.ET_REL:
		return "relocatable"
	case elf.ET_CORE:
		return "core file"
	default:
		return "object"
	}
}

func machoKind(t macho.Type) string {
	switch t {
	case macho.TypeExec:
		return "executable"
	case macho.TypeDylib:
		return "dynamic library"
	case macho.TypeBundle:
		return "bundle"
	case macho.TypeObj:
		return "object"
	default:
		return "file"
	}
}
