package icon

// Icon identifies a UI symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Info
	Progress
	Prompt
	Cookie
	Download
	Folder
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "\uf00c",
		plain:   "[+]",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "\uf00d",
		plain:   "[!]",
		squares: "🟥",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "\uf071",
		plain:   "[!]",
		squares: "🟨",
	},
	Info: {
		emoji:   "ℹ️",
		nerd:    "\uf05a",
		plain:   "[i]",
		squares: "🟦",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "\uf110",
		plain:   "[~]",
		squares: "🟪",
	},
	Prompt: {
		emoji:   "❓",
		nerd:    "\uf128",
		plain:   "[?]",
		squares: "⬜",
	},
	Cookie: {
		emoji:   "🍪",
		nerd:    "\uf563",
		plain:   "[c]",
		squares: "🟫",
	},
	Download: {
		emoji:   "📥",
		nerd:    "\uf019",
		plain:   "[>]",
		squares: "🟩",
	},
	Folder: {
		emoji:   "📁",
		nerd:    "\uf07b",
		plain:   "[d]",
		squares: "🟧",
	},
}
