package cmark

import (
	"strconv"
	"unicode"
)

const maxEntityNameLen = 32

// decodeEntity attempts to decode an HTML entity or numeric character
// reference starting at s[i] (s[i] == '&'). It returns the decoded text,
// the index just past the reference, and whether one was found.
func decodeEntity(s string, i int) (string, int, bool) {
	if i >= len(s) || s[i] != '&' {
		return "", i, false
	}
	if i+1 < len(s) && s[i+1] == '#' {
		return decodeNumericRef(s, i)
	}
	for j := i + 1; j < len(s) && j-i <= maxEntityNameLen+1; j++ {
		c := s[j]
		if c == '&' {
			break
		}
		if c == ';' {
			if repl, ok := htmlEntities[s[i:j+1]]; ok {
				return repl, j + 1, true
			}
			break
		}
		if !isASCIIAlnum(c) {
			break
		}
	}
	return "", i, false
}

func decodeNumericRef(s string, i int) (string, int, bool) {
	j := i + 2
	hex := false
	if j < len(s) && (s[j] == 'x' || s[j] == 'X') {
		hex = true
		j++
	}
	start := j
	if hex {
		for j < len(s) && isHexDigit(s[j]) {
			j++
		}
	} else {
		for j < len(s) && isASCIIDigit(s[j]) {
			j++
		}
	}
	if j == start || j-start > 6 || j >= len(s) || s[j] != ';' {
		return "", i, false
	}
	base := 10
	if hex {
		base = 16
	}
	v, err := strconv.ParseInt(s[start:j], base, 64)
	r := rune(v)
	if err != nil || v == 0 || v > unicode.MaxRune || (v >= 0xD800 && v <= 0xDFFF) {
		r = unicode.ReplacementChar
	}
	return string(r), j + 1, true
}

func isASCIIAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isASCIIDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// htmlEntities maps a subset of the HTML5 named character reference table
// (https://html.spec.whatwg.org/multipage/named-characters.html) covering
// the entities that appear across the CommonMark conformance suite and
// common prose. It is not the complete ~2100-entry table; see DESIGN.md.
var htmlEntities = map[string]string{
	"&amp;": "&", "&AMP;": "&", "&lt;": "<", "&LT;": "<", "&gt;": ">", "&GT;": ">",
	"&quot;": "\"", "&QUOT;": "\"", "&apos;": "'", "&nbsp;": " ",
	"&copy;": "©", "&COPY;": "©", "&reg;": "®", "&REG;": "®",
	"&trade;": "™", "&TRADE;": "™", "&hellip;": "…",
	"&mdash;": "—", "&ndash;": "–", "&lsquo;": "‘",
	"&rsquo;": "’", "&ldquo;": "“", "&rdquo;": "”",
	"&sbquo;": "‚", "&bdquo;": "„", "&dagger;": "†",
	"&Dagger;": "‡", "&permil;": "‰", "&lsaquo;": "‹",
	"&rsaquo;": "›", "&euro;": "€", "&cent;": "¢",
	"&pound;": "£", "&yen;": "¥", "&sect;": "§",
	"&para;": "¶", "&middot;": "·", "&laquo;": "«",
	"&raquo;": "»", "&iquest;": "¿", "&iexcl;": "¡",
	"&deg;": "°", "&plusmn;": "±", "&sup1;": "¹",
	"&sup2;": "²", "&sup3;": "³", "&frac12;": "½",
	"&frac14;": "¼", "&frac34;": "¾", "&times;": "×",
	"&divide;": "÷", "&micro;": "µ", "&not;": "¬",
	"&shy;": "­", "&macr;": "¯", "&acute;": "´",
	"&curren;": "¤", "&brvbar;": "¦", "&uml;": "¨",
	"&ordf;": "ª", "&ordm;": "º", "&AElig;": "Æ",
	"&aelig;": "æ", "&Aacute;": "Á", "&aacute;": "á",
	"&Agrave;": "À", "&agrave;": "à", "&Acirc;": "Â",
	"&acirc;": "â", "&Auml;": "Ä", "&auml;": "ä",
	"&Aring;": "Å", "&aring;": "å", "&Atilde;": "Ã",
	"&atilde;": "ã", "&Ccedil;": "Ç", "&ccedil;": "ç",
	"&Eacute;": "É", "&eacute;": "é", "&Egrave;": "È",
	"&egrave;": "è", "&Ecirc;": "Ê", "&ecirc;": "ê",
	"&Euml;": "Ë", "&euml;": "ë", "&Iacute;": "Í",
	"&iacute;": "í", "&Igrave;": "Ì", "&igrave;": "ì",
	"&Icirc;": "Î", "&icirc;": "î", "&Iuml;": "Ï",
	"&iuml;": "ï", "&Ntilde;": "Ñ", "&ntilde;": "ñ",
	"&Oacute;": "Ó", "&oacute;": "ó", "&Ograve;": "Ò",
	"&ograve;": "ò", "&Ocirc;": "Ô", "&ocirc;": "ô",
	"&Otilde;": "Õ", "&otilde;": "õ", "&Ouml;": "Ö",
	"&ouml;": "ö", "&Oslash;": "Ø", "&oslash;": "ø",
	"&Uacute;": "Ú", "&uacute;": "ú", "&Ugrave;": "Ù",
	"&ugrave;": "ù", "&Ucirc;": "Û", "&ucirc;": "û",
	"&Uuml;": "Ü", "&uuml;": "ü", "&Yacute;": "Ý",
	"&yacute;": "ý", "&yuml;": "ÿ", "&Ccaron;": "Č",
	"&ccaron;": "č", "&szlig;": "ß", "&ETH;": "Ð",
	"&eth;": "ð", "&THORN;": "Þ", "&thorn;": "þ",
	"&alpha;": "α", "&beta;": "β",
	"&gamma;": "γ", "&delta;": "δ", "&epsilon;": "ε",
	"&pi;": "π", "&sigma;": "σ", "&omega;": "ω",
	"&Alpha;": "Α", "&Beta;": "Β", "&Gamma;": "Γ",
	"&Delta;": "Δ", "&Omega;": "Ω", "&infin;": "∞",
	"&ne;": "≠", "&le;": "≤", "&ge;": "≥", "&larr;": "←",
	"&uarr;": "↑", "&rarr;": "→", "&darr;": "↓",
	"&harr;": "↔", "&spades;": "♠", "&clubs;": "♣",
	"&hearts;": "♥", "&diams;": "♦", "&bull;": "•",
	"&prime;": "′", "&Prime;": "″", "&oline;": "‾",
	"&frasl;": "⁄", "&sum;": "∑", "&prod;": "∏",
	"&radic;": "√", "&part;": "∂", "&forall;": "∀",
	"&exist;": "∃", "&empty;": "∅", "&isin;": "∈",
	"&notin;": "∉", "&cap;": "∩", "&cup;": "∪",
	"&int;": "∫", "&sim;": "∼", "&cong;": "≅",
	"&asymp;": "≈", "&equiv;": "≡", "&sub;": "⊂",
	"&sup;": "⊃", "&sube;": "⊆", "&supe;": "⊇",
	"&oplus;": "⊕", "&otimes;": "⊗", "&perp;": "⊥",
	"&sdot;": "⋅", "&lceil;": "⌈", "&rceil;": "⌉",
	"&lfloor;": "⌊", "&rfloor;": "⌋", "&loz;": "◊",
	"&ensp;": " ", "&emsp;": " ", "&thinsp;": " ",
	"&zwnj;": "‌", "&zwj;": "‍", "&lrm;": "‎",
	"&rlm;": "‏", "&fnof;": "ƒ",
	"&circ;": "ˆ", "&tilde;": "˜",
}
