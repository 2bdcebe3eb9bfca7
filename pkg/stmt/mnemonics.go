package stmt

// Mnemonic constants for the merged 6809/6309 instruction set and the
// assembler directives, named by their display form.
var (
	ABX   = mustMnemonic("abX")
	ADCA  = mustMnemonic("adcA")
	ADCB  = mustMnemonic("adcB")
	ADDA  = mustMnemonic("addA")
	ADDB  = mustMnemonic("addB")
	ADDD  = mustMnemonic("addD")
	ANDA  = mustMnemonic("andA")
	ANDB  = mustMnemonic("andB")
	ANDCC = mustMnemonic("andCC")
	ASLA  = mustMnemonic("aslA")
	ASLB  = mustMnemonic("aslB")
	ASL   = mustMnemonic("asl")
	ASRA  = mustMnemonic("asrA")
	ASRB  = mustMnemonic("asrB")
	ASR   = mustMnemonic("asr")
	BCC   = mustMnemonic("bcc")
	BCS   = mustMnemonic("bcs")
	BEQ   = mustMnemonic("beq")
	BITA  = mustMnemonic("bitA")
	BITB  = mustMnemonic("bitB")
	BITMD = mustMnemonic("bitMD")
	BHS   = mustMnemonic("bhs")
	BLO   = mustMnemonic("blo")
	BNE   = mustMnemonic("bne")
	BPL   = mustMnemonic("bpl")
	BRA   = mustMnemonic("bra")
	CLRA  = mustMnemonic("clrA")
	CLRB  = mustMnemonic("clrB")
	CLR   = mustMnemonic("clr")
	CMPA  = mustMnemonic("cmpA")
	CMPB  = mustMnemonic("cmpB")
	CMPD  = mustMnemonic("cmpD")
	CMPR  = mustMnemonic("cmpr")
	CMPS  = mustMnemonic("cmpS")
	CMPU  = mustMnemonic("cmpU")
	CMPX  = mustMnemonic("cmpX")
	CMPY  = mustMnemonic("cmpY")
	COMA  = mustMnemonic("comA")
	COMB  = mustMnemonic("comB")
	COM   = mustMnemonic("com")
	CWAI  = mustMnemonic("cwai")
	DAA   = mustMnemonic("daa")
	DECA  = mustMnemonic("decA")
	DECB  = mustMnemonic("decB")
	DECD  = mustMnemonic("decD")
	DECE  = mustMnemonic("decE")
	DECF  = mustMnemonic("decF")
	DECW  = mustMnemonic("decW")
	DEC   = mustMnemonic("dec")
	EORA  = mustMnemonic("eorA")
	EORB  = mustMnemonic("eorB")
	EXG   = mustMnemonic("exg")
	INCA  = mustMnemonic("incA")
	INCB  = mustMnemonic("incB")
	INCD  = mustMnemonic("incD")
	INCE  = mustMnemonic("incE")
	INCF  = mustMnemonic("incF")
	INCW  = mustMnemonic("incW")
	INC   = mustMnemonic("inc")
	JMP   = mustMnemonic("jmp")
	JSR   = mustMnemonic("jsr")
	LBRA  = mustMnemonic("lbra")
	LBNE  = mustMnemonic("lbne")
	LDA   = mustMnemonic("ldA")
	LDB   = mustMnemonic("ldB")
	LDD   = mustMnemonic("ldD")
	LDE   = mustMnemonic("ldE")
	LDF   = mustMnemonic("ldF")
	LDMD  = mustMnemonic("ldMD")
	LDQ   = mustMnemonic("ldQ")
	LDS   = mustMnemonic("ldS")
	LDU   = mustMnemonic("ldU")
	LDW   = mustMnemonic("ldW")
	LDX   = mustMnemonic("ldX")
	LDY   = mustMnemonic("ldY")
	LEAS  = mustMnemonic("leaS")
	LEAU  = mustMnemonic("leaU")
	LEAX  = mustMnemonic("leaX")
	LEAY  = mustMnemonic("leaY")
	LSLA  = mustMnemonic("lslA")
	LSLB  = mustMnemonic("lslB")
	LSL   = mustMnemonic("lsl")
	LSRA  = mustMnemonic("lsrA")
	LSRB  = mustMnemonic("lsrB")
	LSR   = mustMnemonic("lsr")
	MUL   = mustMnemonic("mul")
	NEGA  = mustMnemonic("negA")
	NEGB  = mustMnemonic("negB")
	NEG   = mustMnemonic("neg")
	NOP   = mustMnemonic("nop")
	ORA   = mustMnemonic("orA")
	ORB   = mustMnemonic("orB")
	ORCC  = mustMnemonic("orCC")
	PSHS  = mustMnemonic("pshS")
	PSHU  = mustMnemonic("pshU")
	PULS  = mustMnemonic("pulS")
	PULU  = mustMnemonic("pulU")
	ROLA  = mustMnemonic("rolA")
	ROLB  = mustMnemonic("rolB")
	ROL   = mustMnemonic("rol")
	RORA  = mustMnemonic("rorA")
	RORB  = mustMnemonic("rorB")
	ROR   = mustMnemonic("ror")
	RTI   = mustMnemonic("rti")
	RTS   = mustMnemonic("rts")
	SBCA  = mustMnemonic("sbcA")
	SBCB  = mustMnemonic("sbcB")
	SEX   = mustMnemonic("sex")
	STA   = mustMnemonic("stA")
	STB   = mustMnemonic("stB")
	STD   = mustMnemonic("stD")
	STE   = mustMnemonic("stE")
	STF   = mustMnemonic("stF")
	STQ   = mustMnemonic("stQ")
	STS   = mustMnemonic("stS")
	STU   = mustMnemonic("stU")
	STW   = mustMnemonic("stW")
	STX   = mustMnemonic("stX")
	STY   = mustMnemonic("stY")
	SUBA  = mustMnemonic("subA")
	SUBB  = mustMnemonic("subB")
	SUBD  = mustMnemonic("subD")
	SWI   = mustMnemonic("swi")
	SWI2  = mustMnemonic("swi2")
	SWI3  = mustMnemonic("swi3")
	SYNC  = mustMnemonic("sync")
	TFR   = mustMnemonic("tfr")
	TSTA  = mustMnemonic("tstA")
	TSTB  = mustMnemonic("tstB")
	TST   = mustMnemonic("tst")

	// Directives.
	ORG  = mustMnemonic("ORG")
	FCB  = mustMnemonic("FCB")
	FDB  = mustMnemonic("FDB")
	CALL = mustMnemonic("CALL")
)
