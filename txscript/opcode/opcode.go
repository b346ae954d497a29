// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package opcode

// Opcode holds the parsing details for an opcode: its value on the wire and
// how many bytes its serialized form occupies. A Length of 1 means a bare
// opcode, a Length greater than 1 means a fixed-size data push including the
// opcode byte itself, and a negative Length means a variable-size push where
// the absolute value is the number of bytes used to encode the data length.
type Opcode struct {
	Value  byte
	Length int
}

// These constants are the values of the official opcodes used on the wire.
// The colored coin gating opcode OP_COLOR occupies the value 188 which is
// unassigned in the bitcoin lineage.
const (
	OP_FALSE               = 0 // AKA OP_0
	OP_0                   = 0
	OP_DATA_1              = 1
	OP_DATA_2              = 2
	OP_DATA_3              = 3
	OP_DATA_4              = 4
	OP_DATA_5              = 5
	OP_DATA_6              = 6
	OP_DATA_7              = 7
	OP_DATA_8              = 8
	OP_DATA_9              = 9
	OP_DATA_10             = 10
	OP_DATA_11             = 11
	OP_DATA_12             = 12
	OP_DATA_13             = 13
	OP_DATA_14             = 14
	OP_DATA_15             = 15
	OP_DATA_16             = 16
	OP_DATA_17             = 17
	OP_DATA_18             = 18
	OP_DATA_19             = 19
	OP_DATA_20             = 20
	OP_DATA_21             = 21
	OP_DATA_22             = 22
	OP_DATA_23             = 23
	OP_DATA_24             = 24
	OP_DATA_25             = 25
	OP_DATA_26             = 26
	OP_DATA_27             = 27
	OP_DATA_28             = 28
	OP_DATA_29             = 29
	OP_DATA_30             = 30
	OP_DATA_31             = 31
	OP_DATA_32             = 32
	OP_DATA_33             = 33
	OP_DATA_34             = 34
	OP_DATA_35             = 35
	OP_DATA_36             = 36
	OP_DATA_37             = 37
	OP_DATA_38             = 38
	OP_DATA_39             = 39
	OP_DATA_40             = 40
	OP_DATA_41             = 41
	OP_DATA_42             = 42
	OP_DATA_43             = 43
	OP_DATA_44             = 44
	OP_DATA_45             = 45
	OP_DATA_46             = 46
	OP_DATA_47             = 47
	OP_DATA_48             = 48
	OP_DATA_49             = 49
	OP_DATA_50             = 50
	OP_DATA_51             = 51
	OP_DATA_52             = 52
	OP_DATA_53             = 53
	OP_DATA_54             = 54
	OP_DATA_55             = 55
	OP_DATA_56             = 56
	OP_DATA_57             = 57
	OP_DATA_58             = 58
	OP_DATA_59             = 59
	OP_DATA_60             = 60
	OP_DATA_61             = 61
	OP_DATA_62             = 62
	OP_DATA_63             = 63
	OP_DATA_64             = 64
	OP_DATA_65             = 65
	OP_DATA_66             = 66
	OP_DATA_67             = 67
	OP_DATA_68             = 68
	OP_DATA_69             = 69
	OP_DATA_70             = 70
	OP_DATA_71             = 71
	OP_DATA_72             = 72
	OP_DATA_73             = 73
	OP_DATA_74             = 74
	OP_DATA_75             = 75
	OP_PUSHDATA1           = 76
	OP_PUSHDATA2           = 77
	OP_PUSHDATA4           = 78
	OP_1NEGATE             = 79
	OP_RESERVED            = 80
	OP_1                   = 81 // AKA OP_TRUE
	OP_TRUE                = 81
	OP_2                   = 82
	OP_3                   = 83
	OP_4                   = 84
	OP_5                   = 85
	OP_6                   = 86
	OP_7                   = 87
	OP_8                   = 88
	OP_9                   = 89
	OP_10                  = 90
	OP_11                  = 91
	OP_12                  = 92
	OP_13                  = 93
	OP_14                  = 94
	OP_15                  = 95
	OP_16                  = 96
	OP_NOP                 = 97
	OP_VER                 = 98
	OP_IF                  = 99
	OP_NOTIF               = 100
	OP_VERIF               = 101
	OP_VERNOTIF            = 102
	OP_ELSE                = 103
	OP_ENDIF               = 104
	OP_VERIFY              = 105
	OP_RETURN              = 106
	OP_TOALTSTACK          = 107
	OP_FROMALTSTACK        = 108
	OP_2DROP               = 109
	OP_2DUP                = 110
	OP_3DUP                = 111
	OP_2OVER               = 112
	OP_2ROT                = 113
	OP_2SWAP               = 114
	OP_IFDUP               = 115
	OP_DEPTH               = 116
	OP_DROP                = 117
	OP_DUP                 = 118
	OP_NIP                 = 119
	OP_OVER                = 120
	OP_PICK                = 121
	OP_ROLL                = 122
	OP_ROT                 = 123
	OP_SWAP                = 124
	OP_TUCK                = 125
	OP_CAT                 = 126
	OP_SUBSTR              = 127
	OP_LEFT                = 128
	OP_RIGHT               = 129
	OP_SIZE                = 130
	OP_INVERT              = 131
	OP_AND                 = 132
	OP_OR                  = 133
	OP_XOR                 = 134
	OP_EQUAL               = 135
	OP_EQUALVERIFY         = 136
	OP_RESERVED1           = 137
	OP_RESERVED2           = 138
	OP_1ADD                = 139
	OP_1SUB                = 140
	OP_2MUL                = 141
	OP_2DIV                = 142
	OP_NEGATE              = 143
	OP_ABS                 = 144
	OP_NOT                 = 145
	OP_0NOTEQUAL           = 146
	OP_ADD                 = 147
	OP_SUB                 = 148
	OP_MUL                 = 149
	OP_DIV                 = 150
	OP_MOD                 = 151
	OP_LSHIFT              = 152
	OP_RSHIFT              = 153
	OP_BOOLAND             = 154
	OP_BOOLOR              = 155
	OP_NUMEQUAL            = 156
	OP_NUMEQUALVERIFY      = 157
	OP_NUMNOTEQUAL         = 158
	OP_LESSTHAN            = 159
	OP_GREATERTHAN         = 160
	OP_LESSTHANOREQUAL     = 161
	OP_GREATERTHANOREQUAL  = 162
	OP_MIN                 = 163
	OP_MAX                 = 164
	OP_WITHIN              = 165
	OP_RIPEMD160           = 166
	OP_SHA1                = 167
	OP_SHA256              = 168
	OP_HASH160             = 169
	OP_HASH256             = 170
	OP_CODESEPARATOR       = 171
	OP_CHECKSIG            = 172
	OP_CHECKSIGVERIFY      = 173
	OP_CHECKMULTISIG       = 174
	OP_CHECKMULTISIGVERIFY = 175
	OP_NOP1                = 176
	OP_NOP2                = 177
	OP_CHECKLOCKTIMEVERIFY = 177 // AKA OP_NOP2
	OP_NOP3                = 178
	OP_CHECKSEQUENCEVERIFY = 178 // AKA OP_NOP3
	OP_NOP4                = 179
	OP_NOP5                = 180
	OP_NOP6                = 181
	OP_NOP7                = 182
	OP_NOP8                = 183
	OP_NOP9                = 184
	OP_NOP10               = 185
	OP_UNKNOWN186          = 186
	OP_UNKNOWN187          = 187
	OP_COLOR               = 188
	OP_UNKNOWN189          = 189
	OP_UNKNOWN190          = 190
	OP_UNKNOWN191          = 191
	OP_UNKNOWN192          = 192
	OP_UNKNOWN193          = 193
	OP_UNKNOWN194          = 194
	OP_UNKNOWN195          = 195
	OP_UNKNOWN196          = 196
	OP_UNKNOWN197          = 197
	OP_UNKNOWN198          = 198
	OP_UNKNOWN199          = 199
	OP_UNKNOWN200          = 200
	OP_UNKNOWN201          = 201
	OP_UNKNOWN202          = 202
	OP_UNKNOWN203          = 203
	OP_UNKNOWN204          = 204
	OP_UNKNOWN205          = 205
	OP_UNKNOWN206          = 206
	OP_UNKNOWN207          = 207
	OP_UNKNOWN208          = 208
	OP_UNKNOWN209          = 209
	OP_UNKNOWN210          = 210
	OP_UNKNOWN211          = 211
	OP_UNKNOWN212          = 212
	OP_UNKNOWN213          = 213
	OP_UNKNOWN214          = 214
	OP_UNKNOWN215          = 215
	OP_UNKNOWN216          = 216
	OP_UNKNOWN217          = 217
	OP_UNKNOWN218          = 218
	OP_UNKNOWN219          = 219
	OP_UNKNOWN220          = 220
	OP_UNKNOWN221          = 221
	OP_UNKNOWN222          = 222
	OP_UNKNOWN223          = 223
	OP_UNKNOWN224          = 224
	OP_UNKNOWN225          = 225
	OP_UNKNOWN226          = 226
	OP_UNKNOWN227          = 227
	OP_UNKNOWN228          = 228
	OP_UNKNOWN229          = 229
	OP_UNKNOWN230          = 230
	OP_UNKNOWN231          = 231
	OP_UNKNOWN232          = 232
	OP_UNKNOWN233          = 233
	OP_UNKNOWN234          = 234
	OP_UNKNOWN235          = 235
	OP_UNKNOWN236          = 236
	OP_UNKNOWN237          = 237
	OP_UNKNOWN238          = 238
	OP_UNKNOWN239          = 239
	OP_UNKNOWN240          = 240
	OP_UNKNOWN241          = 241
	OP_UNKNOWN242          = 242
	OP_UNKNOWN243          = 243
	OP_UNKNOWN244          = 244
	OP_UNKNOWN245          = 245
	OP_UNKNOWN246          = 246
	OP_UNKNOWN247          = 247
	OP_UNKNOWN248          = 248
	OP_UNKNOWN249          = 249
	OP_UNKNOWN250          = 250
	OP_UNKNOWN251          = 251
	OP_UNKNOWN252          = 252
	OP_PUBKEYHASH          = 253 // bitcoind internal, for completeness
	OP_PUBKEY              = 254 // bitcoind internal, for completeness
	OP_INVALIDOPCODE       = 255 // bitcoind internal, for completeness
)

type opcodeInfo struct {
	name   string
	length int
}

// opcodeArray holds the name and serialized length of every possible opcode
// byte value.
var opcodeArray = [256]opcodeInfo{
	// Data push opcodes.
	OP_FALSE:     {"OP_0", 1},
	OP_DATA_1:    {"OP_DATA_1", 2},
	OP_DATA_2:    {"OP_DATA_2", 3},
	OP_DATA_3:    {"OP_DATA_3", 4},
	OP_DATA_4:    {"OP_DATA_4", 5},
	OP_DATA_5:    {"OP_DATA_5", 6},
	OP_DATA_6:    {"OP_DATA_6", 7},
	OP_DATA_7:    {"OP_DATA_7", 8},
	OP_DATA_8:    {"OP_DATA_8", 9},
	OP_DATA_9:    {"OP_DATA_9", 10},
	OP_DATA_10:   {"OP_DATA_10", 11},
	OP_DATA_11:   {"OP_DATA_11", 12},
	OP_DATA_12:   {"OP_DATA_12", 13},
	OP_DATA_13:   {"OP_DATA_13", 14},
	OP_DATA_14:   {"OP_DATA_14", 15},
	OP_DATA_15:   {"OP_DATA_15", 16},
	OP_DATA_16:   {"OP_DATA_16", 17},
	OP_DATA_17:   {"OP_DATA_17", 18},
	OP_DATA_18:   {"OP_DATA_18", 19},
	OP_DATA_19:   {"OP_DATA_19", 20},
	OP_DATA_20:   {"OP_DATA_20", 21},
	OP_DATA_21:   {"OP_DATA_21", 22},
	OP_DATA_22:   {"OP_DATA_22", 23},
	OP_DATA_23:   {"OP_DATA_23", 24},
	OP_DATA_24:   {"OP_DATA_24", 25},
	OP_DATA_25:   {"OP_DATA_25", 26},
	OP_DATA_26:   {"OP_DATA_26", 27},
	OP_DATA_27:   {"OP_DATA_27", 28},
	OP_DATA_28:   {"OP_DATA_28", 29},
	OP_DATA_29:   {"OP_DATA_29", 30},
	OP_DATA_30:   {"OP_DATA_30", 31},
	OP_DATA_31:   {"OP_DATA_31", 32},
	OP_DATA_32:   {"OP_DATA_32", 33},
	OP_DATA_33:   {"OP_DATA_33", 34},
	OP_DATA_34:   {"OP_DATA_34", 35},
	OP_DATA_35:   {"OP_DATA_35", 36},
	OP_DATA_36:   {"OP_DATA_36", 37},
	OP_DATA_37:   {"OP_DATA_37", 38},
	OP_DATA_38:   {"OP_DATA_38", 39},
	OP_DATA_39:   {"OP_DATA_39", 40},
	OP_DATA_40:   {"OP_DATA_40", 41},
	OP_DATA_41:   {"OP_DATA_41", 42},
	OP_DATA_42:   {"OP_DATA_42", 43},
	OP_DATA_43:   {"OP_DATA_43", 44},
	OP_DATA_44:   {"OP_DATA_44", 45},
	OP_DATA_45:   {"OP_DATA_45", 46},
	OP_DATA_46:   {"OP_DATA_46", 47},
	OP_DATA_47:   {"OP_DATA_47", 48},
	OP_DATA_48:   {"OP_DATA_48", 49},
	OP_DATA_49:   {"OP_DATA_49", 50},
	OP_DATA_50:   {"OP_DATA_50", 51},
	OP_DATA_51:   {"OP_DATA_51", 52},
	OP_DATA_52:   {"OP_DATA_52", 53},
	OP_DATA_53:   {"OP_DATA_53", 54},
	OP_DATA_54:   {"OP_DATA_54", 55},
	OP_DATA_55:   {"OP_DATA_55", 56},
	OP_DATA_56:   {"OP_DATA_56", 57},
	OP_DATA_57:   {"OP_DATA_57", 58},
	OP_DATA_58:   {"OP_DATA_58", 59},
	OP_DATA_59:   {"OP_DATA_59", 60},
	OP_DATA_60:   {"OP_DATA_60", 61},
	OP_DATA_61:   {"OP_DATA_61", 62},
	OP_DATA_62:   {"OP_DATA_62", 63},
	OP_DATA_63:   {"OP_DATA_63", 64},
	OP_DATA_64:   {"OP_DATA_64", 65},
	OP_DATA_65:   {"OP_DATA_65", 66},
	OP_DATA_66:   {"OP_DATA_66", 67},
	OP_DATA_67:   {"OP_DATA_67", 68},
	OP_DATA_68:   {"OP_DATA_68", 69},
	OP_DATA_69:   {"OP_DATA_69", 70},
	OP_DATA_70:   {"OP_DATA_70", 71},
	OP_DATA_71:   {"OP_DATA_71", 72},
	OP_DATA_72:   {"OP_DATA_72", 73},
	OP_DATA_73:   {"OP_DATA_73", 74},
	OP_DATA_74:   {"OP_DATA_74", 75},
	OP_DATA_75:   {"OP_DATA_75", 76},
	OP_PUSHDATA1: {"OP_PUSHDATA1", -1},
	OP_PUSHDATA2: {"OP_PUSHDATA2", -2},
	OP_PUSHDATA4: {"OP_PUSHDATA4", -4},
	OP_1NEGATE:   {"OP_1NEGATE", 1},
	OP_RESERVED:  {"OP_RESERVED", 1},
	OP_TRUE:      {"OP_1", 1},
	OP_2:         {"OP_2", 1},
	OP_3:         {"OP_3", 1},
	OP_4:         {"OP_4", 1},
	OP_5:         {"OP_5", 1},
	OP_6:         {"OP_6", 1},
	OP_7:         {"OP_7", 1},
	OP_8:         {"OP_8", 1},
	OP_9:         {"OP_9", 1},
	OP_10:        {"OP_10", 1},
	OP_11:        {"OP_11", 1},
	OP_12:        {"OP_12", 1},
	OP_13:        {"OP_13", 1},
	OP_14:        {"OP_14", 1},
	OP_15:        {"OP_15", 1},
	OP_16:        {"OP_16", 1},

	// Control opcodes.
	OP_NOP:      {"OP_NOP", 1},
	OP_VER:      {"OP_VER", 1},
	OP_IF:       {"OP_IF", 1},
	OP_NOTIF:    {"OP_NOTIF", 1},
	OP_VERIF:    {"OP_VERIF", 1},
	OP_VERNOTIF: {"OP_VERNOTIF", 1},
	OP_ELSE:     {"OP_ELSE", 1},
	OP_ENDIF:    {"OP_ENDIF", 1},
	OP_VERIFY:   {"OP_VERIFY", 1},
	OP_RETURN:   {"OP_RETURN", 1},

	// Stack opcodes.
	OP_TOALTSTACK:   {"OP_TOALTSTACK", 1},
	OP_FROMALTSTACK: {"OP_FROMALTSTACK", 1},
	OP_2DROP:        {"OP_2DROP", 1},
	OP_2DUP:         {"OP_2DUP", 1},
	OP_3DUP:         {"OP_3DUP", 1},
	OP_2OVER:        {"OP_2OVER", 1},
	OP_2ROT:         {"OP_2ROT", 1},
	OP_2SWAP:        {"OP_2SWAP", 1},
	OP_IFDUP:        {"OP_IFDUP", 1},
	OP_DEPTH:        {"OP_DEPTH", 1},
	OP_DROP:         {"OP_DROP", 1},
	OP_DUP:          {"OP_DUP", 1},
	OP_NIP:          {"OP_NIP", 1},
	OP_OVER:         {"OP_OVER", 1},
	OP_PICK:         {"OP_PICK", 1},
	OP_ROLL:         {"OP_ROLL", 1},
	OP_ROT:          {"OP_ROT", 1},
	OP_SWAP:         {"OP_SWAP", 1},
	OP_TUCK:         {"OP_TUCK", 1},

	// Splice opcodes.
	OP_CAT:    {"OP_CAT", 1},
	OP_SUBSTR: {"OP_SUBSTR", 1},
	OP_LEFT:   {"OP_LEFT", 1},
	OP_RIGHT:  {"OP_RIGHT", 1},
	OP_SIZE:   {"OP_SIZE", 1},

	// Bitwise logic opcodes.
	OP_INVERT:      {"OP_INVERT", 1},
	OP_AND:         {"OP_AND", 1},
	OP_OR:          {"OP_OR", 1},
	OP_XOR:         {"OP_XOR", 1},
	OP_EQUAL:       {"OP_EQUAL", 1},
	OP_EQUALVERIFY: {"OP_EQUALVERIFY", 1},
	OP_RESERVED1:   {"OP_RESERVED1", 1},
	OP_RESERVED2:   {"OP_RESERVED2", 1},

	// Numeric related opcodes.
	OP_1ADD:               {"OP_1ADD", 1},
	OP_1SUB:               {"OP_1SUB", 1},
	OP_2MUL:               {"OP_2MUL", 1},
	OP_2DIV:               {"OP_2DIV", 1},
	OP_NEGATE:             {"OP_NEGATE", 1},
	OP_ABS:                {"OP_ABS", 1},
	OP_NOT:                {"OP_NOT", 1},
	OP_0NOTEQUAL:          {"OP_0NOTEQUAL", 1},
	OP_ADD:                {"OP_ADD", 1},
	OP_SUB:                {"OP_SUB", 1},
	OP_MUL:                {"OP_MUL", 1},
	OP_DIV:                {"OP_DIV", 1},
	OP_MOD:                {"OP_MOD", 1},
	OP_LSHIFT:             {"OP_LSHIFT", 1},
	OP_RSHIFT:             {"OP_RSHIFT", 1},
	OP_BOOLAND:            {"OP_BOOLAND", 1},
	OP_BOOLOR:             {"OP_BOOLOR", 1},
	OP_NUMEQUAL:           {"OP_NUMEQUAL", 1},
	OP_NUMEQUALVERIFY:     {"OP_NUMEQUALVERIFY", 1},
	OP_NUMNOTEQUAL:        {"OP_NUMNOTEQUAL", 1},
	OP_LESSTHAN:           {"OP_LESSTHAN", 1},
	OP_GREATERTHAN:        {"OP_GREATERTHAN", 1},
	OP_LESSTHANOREQUAL:    {"OP_LESSTHANOREQUAL", 1},
	OP_GREATERTHANOREQUAL: {"OP_GREATERTHANOREQUAL", 1},
	OP_MIN:                {"OP_MIN", 1},
	OP_MAX:                {"OP_MAX", 1},
	OP_WITHIN:             {"OP_WITHIN", 1},

	// Crypto opcodes.
	OP_RIPEMD160:           {"OP_RIPEMD160", 1},
	OP_SHA1:                {"OP_SHA1", 1},
	OP_SHA256:              {"OP_SHA256", 1},
	OP_HASH160:             {"OP_HASH160", 1},
	OP_HASH256:             {"OP_HASH256", 1},
	OP_CODESEPARATOR:       {"OP_CODESEPARATOR", 1},
	OP_CHECKSIG:            {"OP_CHECKSIG", 1},
	OP_CHECKSIGVERIFY:      {"OP_CHECKSIGVERIFY", 1},
	OP_CHECKMULTISIG:       {"OP_CHECKMULTISIG", 1},
	OP_CHECKMULTISIGVERIFY: {"OP_CHECKMULTISIGVERIFY", 1},

	// Reserved opcodes.
	OP_NOP1:                {"OP_NOP1", 1},
	OP_CHECKLOCKTIMEVERIFY: {"OP_CHECKLOCKTIMEVERIFY", 1},
	OP_CHECKSEQUENCEVERIFY: {"OP_CHECKSEQUENCEVERIFY", 1},
	OP_NOP4:                {"OP_NOP4", 1},
	OP_NOP5:                {"OP_NOP5", 1},
	OP_NOP6:                {"OP_NOP6", 1},
	OP_NOP7:                {"OP_NOP7", 1},
	OP_NOP8:                {"OP_NOP8", 1},
	OP_NOP9:                {"OP_NOP9", 1},
	OP_NOP10:               {"OP_NOP10", 1},

	// Colored coin opcode.
	OP_COLOR: {"OP_COLOR", 1},

	// Undefined opcodes.
	OP_UNKNOWN186: {"OP_UNKNOWN186", 1},
	OP_UNKNOWN187: {"OP_UNKNOWN187", 1},
	OP_UNKNOWN189: {"OP_UNKNOWN189", 1},
	OP_UNKNOWN190: {"OP_UNKNOWN190", 1},
	OP_UNKNOWN191: {"OP_UNKNOWN191", 1},
	OP_UNKNOWN192: {"OP_UNKNOWN192", 1},
	OP_UNKNOWN193: {"OP_UNKNOWN193", 1},
	OP_UNKNOWN194: {"OP_UNKNOWN194", 1},
	OP_UNKNOWN195: {"OP_UNKNOWN195", 1},
	OP_UNKNOWN196: {"OP_UNKNOWN196", 1},
	OP_UNKNOWN197: {"OP_UNKNOWN197", 1},
	OP_UNKNOWN198: {"OP_UNKNOWN198", 1},
	OP_UNKNOWN199: {"OP_UNKNOWN199", 1},
	OP_UNKNOWN200: {"OP_UNKNOWN200", 1},
	OP_UNKNOWN201: {"OP_UNKNOWN201", 1},
	OP_UNKNOWN202: {"OP_UNKNOWN202", 1},
	OP_UNKNOWN203: {"OP_UNKNOWN203", 1},
	OP_UNKNOWN204: {"OP_UNKNOWN204", 1},
	OP_UNKNOWN205: {"OP_UNKNOWN205", 1},
	OP_UNKNOWN206: {"OP_UNKNOWN206", 1},
	OP_UNKNOWN207: {"OP_UNKNOWN207", 1},
	OP_UNKNOWN208: {"OP_UNKNOWN208", 1},
	OP_UNKNOWN209: {"OP_UNKNOWN209", 1},
	OP_UNKNOWN210: {"OP_UNKNOWN210", 1},
	OP_UNKNOWN211: {"OP_UNKNOWN211", 1},
	OP_UNKNOWN212: {"OP_UNKNOWN212", 1},
	OP_UNKNOWN213: {"OP_UNKNOWN213", 1},
	OP_UNKNOWN214: {"OP_UNKNOWN214", 1},
	OP_UNKNOWN215: {"OP_UNKNOWN215", 1},
	OP_UNKNOWN216: {"OP_UNKNOWN216", 1},
	OP_UNKNOWN217: {"OP_UNKNOWN217", 1},
	OP_UNKNOWN218: {"OP_UNKNOWN218", 1},
	OP_UNKNOWN219: {"OP_UNKNOWN219", 1},
	OP_UNKNOWN220: {"OP_UNKNOWN220", 1},
	OP_UNKNOWN221: {"OP_UNKNOWN221", 1},
	OP_UNKNOWN222: {"OP_UNKNOWN222", 1},
	OP_UNKNOWN223: {"OP_UNKNOWN223", 1},
	OP_UNKNOWN224: {"OP_UNKNOWN224", 1},
	OP_UNKNOWN225: {"OP_UNKNOWN225", 1},
	OP_UNKNOWN226: {"OP_UNKNOWN226", 1},
	OP_UNKNOWN227: {"OP_UNKNOWN227", 1},
	OP_UNKNOWN228: {"OP_UNKNOWN228", 1},
	OP_UNKNOWN229: {"OP_UNKNOWN229", 1},
	OP_UNKNOWN230: {"OP_UNKNOWN230", 1},
	OP_UNKNOWN231: {"OP_UNKNOWN231", 1},
	OP_UNKNOWN232: {"OP_UNKNOWN232", 1},
	OP_UNKNOWN233: {"OP_UNKNOWN233", 1},
	OP_UNKNOWN234: {"OP_UNKNOWN234", 1},
	OP_UNKNOWN235: {"OP_UNKNOWN235", 1},
	OP_UNKNOWN236: {"OP_UNKNOWN236", 1},
	OP_UNKNOWN237: {"OP_UNKNOWN237", 1},
	OP_UNKNOWN238: {"OP_UNKNOWN238", 1},
	OP_UNKNOWN239: {"OP_UNKNOWN239", 1},
	OP_UNKNOWN240: {"OP_UNKNOWN240", 1},
	OP_UNKNOWN241: {"OP_UNKNOWN241", 1},
	OP_UNKNOWN242: {"OP_UNKNOWN242", 1},
	OP_UNKNOWN243: {"OP_UNKNOWN243", 1},
	OP_UNKNOWN244: {"OP_UNKNOWN244", 1},
	OP_UNKNOWN245: {"OP_UNKNOWN245", 1},
	OP_UNKNOWN246: {"OP_UNKNOWN246", 1},
	OP_UNKNOWN247: {"OP_UNKNOWN247", 1},
	OP_UNKNOWN248: {"OP_UNKNOWN248", 1},
	OP_UNKNOWN249: {"OP_UNKNOWN249", 1},
	OP_UNKNOWN250: {"OP_UNKNOWN250", 1},
	OP_UNKNOWN251: {"OP_UNKNOWN251", 1},
	OP_UNKNOWN252: {"OP_UNKNOWN252", 1},
	OP_PUBKEYHASH: {"OP_PUBKEYHASH", 1},
	OP_PUBKEY:     {"OP_PUBKEY", 1},

	OP_INVALIDOPCODE: {"OP_INVALIDOPCODE", 1},
}

// OpcodeByName is a map that can be used to lookup an opcode value by its
// human-readable name. It includes the aliases which do not appear in the
// canonical name table.
var OpcodeByName = make(map[string]byte)

func init() {
	for i := range opcodeArray {
		OpcodeByName[opcodeArray[i].name] = byte(i)
	}
	OpcodeByName["OP_FALSE"] = OP_FALSE
	OpcodeByName["OP_TRUE"] = OP_TRUE
	OpcodeByName["OP_NOP2"] = OP_NOP2
	OpcodeByName["OP_NOP3"] = OP_NOP3
}

// MkOpcode returns the Opcode for a given opcode value.
func MkOpcode(value byte) Opcode {
	return Opcode{Value: value, Length: opcodeArray[value].length}
}

// OpcodeName returns the human-readable name of an opcode value.
func OpcodeName(value byte) string {
	return opcodeArray[value].name
}
