// Package opcode holds the build-time opcode tables for the merged
// MC6809 and HD6309 instruction sets. Each mnemonic key maps the
// addressing-mode codes it supports to a one- or two-byte opcode,
// written as a hex string. The tables are validated and decoded once
// at startup.
package opcode

import (
	"encoding/hex"
	"fmt"

	"github.com/rob-smallshire/asm68/pkg/addr"
)

// Row maps a mode code to the hex string of the opcode bytes.
type Row map[addr.Code]string

// Table6809 is the base MC6809 instruction set.
var Table6809 = map[string]Row{
	"abX":   {addr.INH: "3A"},
	"adcA":  {addr.IMM: "89", addr.DIR: "99", addr.IDX: "A9", addr.EXT: "B9"},
	"adcB":  {addr.IMM: "C9", addr.DIR: "D9", addr.IDX: "E9", addr.EXT: "F9"},
	"addA":  {addr.IMM: "8B", addr.DIR: "9B", addr.IDX: "AB", addr.EXT: "BB"},
	"addB":  {addr.IMM: "CB", addr.DIR: "DB", addr.IDX: "EB", addr.EXT: "FB"},
	"addD":  {addr.IMM: "C3", addr.DIR: "D3", addr.IDX: "E3", addr.EXT: "F3"},
	"andA":  {addr.IMM: "84", addr.DIR: "94", addr.IDX: "A4", addr.EXT: "B4"},
	"andB":  {addr.IMM: "C4", addr.DIR: "D4", addr.IDX: "E4", addr.EXT: "F4"},
	"andCC": {addr.IMM: "1C"},
	"aslA":  {addr.INH: "48"},
	"aslB":  {addr.INH: "58"},
	"asl":   {addr.DIR: "08", addr.IDX: "68", addr.EXT: "78"},
	"asrA":  {addr.INH: "47"},
	"asrB":  {addr.INH: "57"},
	"asr":   {addr.DIR: "07", addr.IDX: "67", addr.EXT: "77"},
	"bcc":   {addr.REL8: "24"},
	"bcs":   {addr.REL8: "25"},
	"beq":   {addr.REL8: "27"},
	"bitA":  {addr.IMM: "85", addr.DIR: "95", addr.IDX: "A5", addr.EXT: "B5"},
	"bitB":  {addr.IMM: "C5", addr.DIR: "D5", addr.IDX: "E5", addr.EXT: "F5"},
	"bhs":   {addr.REL8: "24"},
	"blo":   {addr.REL8: "25"},
	"bne":   {addr.REL8: "26"},
	"bpl":   {addr.REL8: "2A"},
	"bra":   {addr.REL8: "20"},
	"clrA":  {addr.INH: "4F"},
	"clrB":  {addr.INH: "5F"},
	"clr":   {addr.DIR: "0F", addr.IDX: "6F", addr.EXT: "7F"},
	"cmpA":  {addr.IMM: "81", addr.DIR: "91", addr.IDX: "A1", addr.EXT: "B1"},
	"cmpB":  {addr.IMM: "C1", addr.DIR: "D1", addr.IDX: "E1", addr.EXT: "F1"},
	"cmpD":  {addr.IMM: "1083", addr.DIR: "1093", addr.IDX: "10A3", addr.EXT: "10B3"},
	"cmpS":  {addr.IMM: "118C", addr.DIR: "119C", addr.IDX: "11AC", addr.EXT: "11BC"},
	"cmpU":  {addr.IMM: "1183", addr.DIR: "1193", addr.IDX: "11A3", addr.EXT: "11B3"},
	"cmpX":  {addr.IMM: "8C", addr.DIR: "9C", addr.IDX: "AC", addr.EXT: "BC"},
	"cmpY":  {addr.IMM: "108C", addr.DIR: "109C", addr.IDX: "10AC", addr.EXT: "10BC"},
	"comA":  {addr.INH: "43"},
	"comB":  {addr.INH: "53"},
	"com":   {addr.DIR: "03", addr.IDX: "63", addr.EXT: "73"},
	"cwai":  {addr.IMM: "3C"},
	"daa":   {addr.INH: "19"},
	"decA":  {addr.INH: "4A"},
	"decB":  {addr.INH: "5A"},
	"dec":   {addr.DIR: "0A", addr.IDX: "6A", addr.EXT: "7A"},
	"eorA":  {addr.IMM: "88", addr.DIR: "98", addr.IDX: "A8", addr.EXT: "B8"},
	"eorB":  {addr.IMM: "C8", addr.DIR: "D8", addr.IDX: "E8", addr.EXT: "F8"},
	"exg":   {addr.INT: "1E"},
	"incA":  {addr.INH: "4C"},
	"incB":  {addr.INH: "5C"},
	"inc":   {addr.DIR: "0C", addr.IDX: "6C", addr.EXT: "7C"},
	"jmp":   {addr.DIR: "0E", addr.IDX: "6E", addr.EXT: "7E"},
	"jsr":   {addr.DIR: "9D", addr.IDX: "AD", addr.EXT: "BD"},
	"lbra":  {addr.REL16: "16"},
	"lbne":  {addr.REL16: "1026"},
	"ldA":   {addr.IMM: "86", addr.DIR: "96", addr.IDX: "A6", addr.EXT: "B6"},
	"ldB":   {addr.IMM: "C6", addr.DIR: "D6", addr.IDX: "E6", addr.EXT: "F6"},
	"ldD":   {addr.IMM: "CC", addr.DIR: "DC", addr.IDX: "EC", addr.EXT: "FC"},
	"ldS":   {addr.IMM: "10CE", addr.DIR: "10DE", addr.IDX: "10EE", addr.EXT: "10FE"},
	"ldU":   {addr.IMM: "CE", addr.DIR: "DE", addr.IDX: "EE", addr.EXT: "FE"},
	"ldX":   {addr.IMM: "8E", addr.DIR: "9E", addr.IDX: "AE", addr.EXT: "BE"},
	"ldY":   {addr.IMM: "108E", addr.DIR: "109E", addr.IDX: "10AE", addr.EXT: "10BE"},
	"leaS":  {addr.IDX: "32"},
	"leaU":  {addr.IDX: "33"},
	"leaX":  {addr.IDX: "30"},
	"leaY":  {addr.IDX: "31"},
	"lslA":  {addr.INH: "48"},
	"lslB":  {addr.INH: "58"},
	"lsl":   {addr.DIR: "08", addr.IDX: "68", addr.EXT: "78"},
	"lsrA":  {addr.INH: "44"},
	"lsrB":  {addr.INH: "54"},
	"lsr":   {addr.DIR: "04", addr.IDX: "64", addr.EXT: "74"},
	"mul":   {addr.INH: "3D"},
	"negA":  {addr.INH: "40"},
	"negB":  {addr.INH: "50"},
	"neg":   {addr.DIR: "00", addr.IDX: "60", addr.EXT: "70"},
	"nop":   {addr.INH: "12"},
	"orA":   {addr.IMM: "8A", addr.DIR: "9A", addr.IDX: "AA", addr.EXT: "BA"},
	"orB":   {addr.IMM: "CA", addr.DIR: "DA", addr.IDX: "EA", addr.EXT: "FA"},
	"orCC":  {addr.IMM: "1A"},
	"pshS":  {addr.IMM: "34"},
	"pshU":  {addr.IMM: "36"},
	"pulS":  {addr.IMM: "35"},
	"pulU":  {addr.IMM: "37"},
	"rolA":  {addr.INH: "49"},
	"rolB":  {addr.INH: "59"},
	"rol":   {addr.DIR: "09", addr.IDX: "69", addr.EXT: "79"},
	"rorA":  {addr.INH: "46"},
	"rorB":  {addr.INH: "56"},
	"ror":   {addr.DIR: "06", addr.IDX: "66", addr.EXT: "76"},
	"rti":   {addr.INH: "3B"},
	"rts":   {addr.INH: "39"},
	"sbcA":  {addr.IMM: "82", addr.DIR: "92", addr.IDX: "A2", addr.EXT: "B2"},
	"sbcB":  {addr.IMM: "C2", addr.DIR: "D2", addr.IDX: "E2", addr.EXT: "F2"},
	"sex":   {addr.INH: "1D"},
	"stA":   {addr.DIR: "97", addr.IDX: "A7", addr.EXT: "B7"},
	"stB":   {addr.DIR: "D7", addr.IDX: "E7", addr.EXT: "F7"},
	"stD":   {addr.DIR: "DD", addr.IDX: "ED", addr.EXT: "FD"},
	"stS":   {addr.DIR: "10DF", addr.IDX: "10EF", addr.EXT: "10FF"},
	"stU":   {addr.DIR: "DF", addr.IDX: "EF", addr.EXT: "FF"},
	"stX":   {addr.DIR: "9F", addr.IDX: "AF", addr.EXT: "BF"},
	"stY":   {addr.DIR: "109F", addr.IDX: "10AF", addr.EXT: "10BF"},
	"subA":  {addr.IMM: "80", addr.DIR: "90", addr.IDX: "A0", addr.EXT: "B0"},
	"subB":  {addr.IMM: "C0", addr.DIR: "D0", addr.IDX: "E0", addr.EXT: "F0"},
	"subD":  {addr.IMM: "83", addr.DIR: "93", addr.IDX: "A3", addr.EXT: "B3"},
	"swi":   {addr.INH: "3F"},
	"swi2":  {addr.INH: "103F"},
	"swi3":  {addr.INH: "113F"},
	"sync":  {addr.INH: "13"},
	"tfr":   {addr.INT: "1F"},
	"tstA":  {addr.INH: "4D"},
	"tstB":  {addr.INH: "5D"},
	"tst":   {addr.DIR: "0D", addr.IDX: "6D", addr.EXT: "7D"},
}

// Table6309 is the HD6309 extension set. Mnemonic keys are disjoint
// from Table6809. Some rows carry a leading zero byte which must be
// preserved, e.g. incD.
var Table6309 = map[string]Row{
	"bitMD": {addr.IMM: "113C"},
	"cmpr":  {addr.INT: "1037"},
	"decD":  {addr.INH: "104A"},
	"decE":  {addr.INH: "114A"},
	"decF":  {addr.INH: "115A"},
	"decW":  {addr.INH: "105A"},
	"incD":  {addr.INH: "004C"},
	"incE":  {addr.INH: "014C"},
	"incF":  {addr.INH: "015C"},
	"incW":  {addr.INH: "005C"},
	"ldE":   {addr.IMM: "0186", addr.DIR: "0196", addr.IDX: "01A6", addr.EXT: "01B6"},
	"ldF":   {addr.IMM: "01C6", addr.DIR: "01D6", addr.IDX: "01E6", addr.EXT: "01F6"},
	"ldQ":   {addr.IMM: "CD", addr.DIR: "DC", addr.IDX: "EC", addr.EXT: "FC"},
	"ldW":   {addr.IMM: "86", addr.DIR: "96", addr.IDX: "A6", addr.EXT: "B6"},
	"ldMD":  {addr.IMM: "113D"},
	"stE":   {addr.DIR: "0197", addr.IDX: "01A7", addr.EXT: "01B7"},
	"stF":   {addr.DIR: "01D7", addr.IDX: "01E7", addr.EXT: "01F7"},
	"stQ":   {addr.DIR: "00DD", addr.IDX: "00ED", addr.EXT: "00FD"},
	"stW":   {addr.DIR: "0097", addr.IDX: "00A7", addr.EXT: "00B7"},
}

// Table is the merged instruction set, decoded to opcode bytes.
// Populated by init.
var Table map[string]map[addr.Code][]byte

func init() {
	merged, err := merge(Table6809, Table6309)
	if err != nil {
		panic(fmt.Sprintf("opcode: invalid table: %v", err))
	}
	Table = merged
}

// merge combines the dialect tables into decoded form, checking that
// mnemonic keys are disjoint and every entry is one or two bytes of
// valid hex.
func merge(dialects ...map[string]Row) (map[string]map[addr.Code][]byte, error) {
	merged := make(map[string]map[addr.Code][]byte)
	for _, dialect := range dialects {
		for key, row := range dialect {
			if _, dup := merged[key]; dup {
				return nil, fmt.Errorf("mnemonic key %q appears in more than one dialect", key)
			}
			decoded := make(map[addr.Code][]byte, len(row))
			for code, hexBytes := range row {
				if _, single := code.Single(); !single {
					return nil, fmt.Errorf("mnemonic key %q has compound mode code %v", key, code)
				}
				b, err := hex.DecodeString(hexBytes)
				if err != nil {
					return nil, fmt.Errorf("mnemonic key %q mode %v: %v", key, code, err)
				}
				if len(b) < 1 || len(b) > 2 {
					return nil, fmt.Errorf("mnemonic key %q mode %v: opcode %q is not 1 or 2 bytes", key, code, hexBytes)
				}
				decoded[code] = b
			}
			merged[key] = decoded
		}
	}
	return merged, nil
}

// Lookup returns the decoded row for a mnemonic key.
func Lookup(key string) (map[addr.Code][]byte, bool) {
	row, ok := Table[key]
	return row, ok
}

// Codes returns the set of mode codes a mnemonic key supports.
func Codes(key string) (addr.Code, bool) {
	row, ok := Table[key]
	if !ok {
		return 0, false
	}
	var set addr.Code
	for code := range row {
		set |= code
	}
	return set, true
}

// Keys lists every mnemonic key in the merged table.
func Keys() []string {
	keys := make([]string, 0, len(Table))
	for key := range Table {
		keys = append(keys, key)
	}
	return keys
}
