package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

func TestClassifier_Classify(t *testing.T) {
	c := New(nil, 0) // built-in taxonomy

	t.Run("defi critical", func(t *testing.T) {
		result, ok := c.Classify("Critical RCE Vulnerability in Popular DeFi Protocol",
			"A remote code execution flaw in the smart contract bridge lets attackers drain liquidity pools.")
		require.True(t, ok)
		assert.Equal(t, "defi-security", result.Category)
		assert.Equal(t, domain.SeverityCritical, result.Severity)
		assert.Contains(t, result.Tags, "defi")
		assert.Contains(t, result.Tags, "smart contract")
	})

	t.Run("off-topic dropped", func(t *testing.T) {
		_, ok := c.Classify("Quarterly earnings beat analyst expectations",
			"Revenue grew eight percent on strong advertising demand.")
		assert.False(t, ok, "no keyword match means irrelevant, not an error")
	})

	t.Run("cve extraction", func(t *testing.T) {
		result, ok := c.Classify("Patch released for CVE-2025-12345 in Apache modules", "")
		require.True(t, ok)
		assert.Equal(t, "CVE-2025-12345", result.CVE)
		assert.Equal(t, "vulnerability", result.Category)
		assert.Contains(t, result.Technologies, "apache")
	})

	t.Run("severity indicator order", func(t *testing.T) {
		// "critical" in the title must win over weaker indicators
		result, ok := c.Classify("Critical exploit patches vulnerability in wallet software", "")
		require.True(t, ok)
		assert.Equal(t, domain.SeverityCritical, result.Severity)

		result, ok = c.Classify("Ransomware gang breaches hospital network", "")
		require.True(t, ok)
		assert.Equal(t, domain.SeverityHigh, result.Severity)

		result, ok = c.Classify("Vendor ships patch for authentication flaw", "")
		require.True(t, ok)
		assert.Equal(t, domain.SeverityMedium, result.Severity)
	})

	t.Run("no severity indicator defaults to low", func(t *testing.T) {
		result, ok := c.Classify("New compliance guidance for exchanges", "")
		require.True(t, ok)
		assert.Equal(t, domain.SeverityLow, result.Severity)
	})

	t.Run("body contributes to the score", func(t *testing.T) {
		result, ok := c.Classify("Weekly roundup",
			"Researchers spotted a new stealer malware family targeting seed phrase backups.")
		require.True(t, ok)
		assert.Equal(t, "malware", result.Category)
	})

	t.Run("technologies matched as substrings", func(t *testing.T) {
		result, ok := c.Classify("Phishing wave hits MetaMask and Ledger users", "")
		require.True(t, ok)
		assert.Contains(t, result.Technologies, "metamask")
		assert.Contains(t, result.Technologies, "ledger")
	})
}

func TestClassifier_CustomRules(t *testing.T) {
	rules := []domain.KeywordRule{
		{Keyword: "widget", Category: "custom", Weight: 5},
		{Keyword: "gadget", Category: "custom", Weight: 1},
	}
	c := New(rules, 1)

	result, ok := c.Classify("Widget and gadget security advisory", "")
	require.True(t, ok)
	assert.Equal(t, "custom", result.Category, "unmapped category keeps its raw name")
	assert.Equal(t, []string{"widget"}, result.Tags, "tag cap honors weight order")
}

func TestClassifier_TagDeterminism(t *testing.T) {
	c := New(nil, 3)

	first, ok := c.Classify("Zero-day exploit enables remote code execution against exchange wallets", "")
	require.True(t, ok)
	second, ok := c.Classify("Zero-day exploit enables remote code execution against exchange wallets", "")
	require.True(t, ok)

	assert.Equal(t, first, second, "same input always classifies the same way")
	assert.LessOrEqual(t, len(first.Tags), 3)
}
