package classify

import "github.com/threatwatch/threatwatch/pkg/domain"

// categoryNames maps raw taxonomy categories to their canonical
// published names
var categoryNames = map[string]string{
	"defi":       "defi-security",
	"wallet":     "wallet-security",
	"exchange":   "exchange-security",
	"malware":    "malware",
	"phishing":   "phishing-scams",
	"breach":     "data-breach",
	"vuln":       "vulnerability",
	"network":    "network-security",
	"regulation": "regulation",
}

// DefaultRules is the built-in keyword taxonomy, used to seed the
// keyword_rules table and as a fallback when the table is empty
func DefaultRules() []domain.KeywordRule {
	return []domain.KeywordRule{
		// defi / on-chain
		{Keyword: "defi", Category: "defi", Weight: 5},
		{Keyword: "smart contract", Category: "defi", Weight: 4},
		{Keyword: "flash loan", Category: "defi", Weight: 4},
		{Keyword: "liquidity pool", Category: "defi", Weight: 3},
		{Keyword: "bridge", Category: "defi", Weight: 2},
		{Keyword: "protocol", Category: "defi", Weight: 1},

		// wallets
		{Keyword: "wallet", Category: "wallet", Weight: 4},
		{Keyword: "seed phrase", Category: "wallet", Weight: 5},
		{Keyword: "private key", Category: "wallet", Weight: 4},
		{Keyword: "hardware wallet", Category: "wallet", Weight: 4},

		// exchanges
		{Keyword: "exchange", Category: "exchange", Weight: 3},
		{Keyword: "custodial", Category: "exchange", Weight: 3},
		{Keyword: "withdrawal", Category: "exchange", Weight: 2},

		// malware
		{Keyword: "malware", Category: "malware", Weight: 5},
		{Keyword: "ransomware", Category: "malware", Weight: 5},
		{Keyword: "trojan", Category: "malware", Weight: 4},
		{Keyword: "botnet", Category: "malware", Weight: 4},
		{Keyword: "stealer", Category: "malware", Weight: 4},
		{Keyword: "backdoor", Category: "malware", Weight: 3},

		// phishing and scams
		{Keyword: "phishing", Category: "phishing", Weight: 5},
		{Keyword: "scam", Category: "phishing", Weight: 4},
		{Keyword: "social engineering", Category: "phishing", Weight: 4},
		{Keyword: "impersonation", Category: "phishing", Weight: 3},
		{Keyword: "airdrop", Category: "phishing", Weight: 2},

		// breaches
		{Keyword: "data breach", Category: "breach", Weight: 5},
		{Keyword: "breach", Category: "breach", Weight: 3},
		{Keyword: "leaked", Category: "breach", Weight: 3},
		{Keyword: "exposed database", Category: "breach", Weight: 4},

		// vulnerabilities
		{Keyword: "vulnerability", Category: "vuln", Weight: 4},
		{Keyword: "zero-day", Category: "vuln", Weight: 5},
		{Keyword: "exploit", Category: "vuln", Weight: 4},
		{Keyword: "cve-", Category: "vuln", Weight: 4},
		{Keyword: "remote code execution", Category: "vuln", Weight: 5},
		{Keyword: "patch", Category: "vuln", Weight: 2},
		{Keyword: "security update", Category: "vuln", Weight: 2},

		// network
		{Keyword: "ddos", Category: "network", Weight: 4},
		{Keyword: "dns hijack", Category: "network", Weight: 4},
		{Keyword: "man-in-the-middle", Category: "network", Weight: 4},
		{Keyword: "bgp", Category: "network", Weight: 3},

		// regulation
		{Keyword: "sanction", Category: "regulation", Weight: 3},
		{Keyword: "sec charges", Category: "regulation", Weight: 3},
		{Keyword: "compliance", Category: "regulation", Weight: 2},
	}
}
