package pastebin

// highlightingNames lists every syntax highlighting tag the service accepts,
// verbatim from the Pastebin API docs.
var highlightingNames = []string{
	"4cs", "6502acme", "6502kickass", "6502tasm", "abap", "actionscript",
	"actionscript3", "ada", "aimms", "algol68", "apache", "applescript",
	"apt_sources", "arduino", "arm", "asm", "asp", "asymptote", "autoconf",
	"autohotkey", "autoit", "avisynth", "awk", "bascomavr", "bash",
	"basic4gl", "dos", "bibtex", "b3d", "blitzbasic", "bmx", "bnf", "boo",
	"bf", "c", "csharp", "c_winapi", "cpp", "cpp-winapi", "cpp-qt",
	"c_loadrunner", "caddcl", "cadlisp", "ceylon", "cfdg", "c_mac",
	"chaiscript", "chapel", "cil", "clojure", "klonec", "klonecpp",
	"cmake", "cobol", "coffeescript", "cfm", "css", "cuesheet", "d", "dart",
	"dcl", "dcpu16", "dcs", "delphi", "oxygene", "diff", "div", "dot",
	"e", "ezt", "ecmascript", "eiffel", "email", "epc", "erlang", "euphoria",
	"fsharp", "falcon", "filemaker", "fo", "f1", "fortran", "freebasic",
	"freeswitch", "gambas", "gml", "gdb", "gdscript", "genero", "genie",
	"gettext", "go", "godot-glsl", "groovy", "gwbasic", "haskell", "haxe",
	"hicest", "hq9plus", "html4strict", "html5", "icon", "idl", "ini",
	"inno", "intercal", "io", "ispfpanel", "j", "java", "java5",
	"javascript", "jcl", "jquery", "json", "julia", "kixtart", "kotlin",
	"ksp", "latex", "ldif", "lb", "lsl2", "lisp", "llvm", "locobasic",
	"logtalk", "lolcode", "lotusformulas", "lotusscript", "lscript", "lua",
	"m68k", "magiksf", "make", "mapbasic", "markdown", "matlab", "mercury",
	"metapost", "mirc", "mmix", "mk-61", "modula2", "modula3", "68000devpac",
	"mpasm", "mxml", "mysql", "nagios", "netrexx", "newlisp", "nginx",
	"nim", "nsis", "oberon2", "objeck", "objc", "ocaml", "ocaml-brief",
	"octave", "pf", "glsl", "oorexx", "oobas", "oracle8", "oracle11", "oz",
	"parasail", "parigp", "pascal", "pawn", "pcre", "per", "perl", "perl6",
	"phix", "php", "php-brief", "pic16", "pike", "pixelbender", "pli",
	"plsql", "postgresql", "postscript", "povray", "powerbuilder",
	"powershell", "proftpd", "progress", "prolog", "properties", "providex",
	"puppet", "purebasic", "pycon", "python", "pys60", "q", "qbasic", "qml",
	"rsplus", "racket", "rails", "rbs", "rebol", "reg", "rexx", "robots",
	"roff", "rpmspec", "ruby", "gnuplot", "rust", "sas", "scala", "scheme",
	"scilab", "scl", "sdlbasic", "smalltalk", "smarty", "spark", "sparql",
	"sqf", "sql", "sshconfig", "standardml", "stonescript", "sclang",
	"swift", "systemverilog", "tsql", "tcl", "teraterm", "texgraph",
	"thinbasic", "typescript", "typoscript", "unicon", "uscript", "upc",
	"urbi", "vala", "vbnet", "vbscript", "vedit", "verilog", "vhdl", "vim",
	"vb", "visualfoxpro", "visualprolog", "whitespace", "whois", "winbatch",
	"xbasic", "xml", "xojo", "xorg_conf", "xpp", "yaml", "yara", "z80",
	"zxbasic",
}

var highlightingSet = make(map[string]struct{}, len(highlightingNames))

func init() {
	for _, name := range highlightingNames {
		highlightingSet[name] = struct{}{}
	}
}

// ValidHighlighting reports whether name is a syntax tag the service
// recognizes. Matching is case-sensitive, as the service's is.
func ValidHighlighting(name string) bool {
	_, ok := highlightingSet[name]
	return ok
}

// HighlightingOptions returns the recognized syntax tags in docs order.
// The returned slice is a copy.
func HighlightingOptions() []string {
	out := make([]string, len(highlightingNames))
	copy(out, highlightingNames)
	return out
}
