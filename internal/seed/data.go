package seed

type seedRecord struct {
	app      string
	typ      string
	recordID string
	name     string
	title    string
	content  string
	tags     []string
	url      string
}

type seedSavedSearch struct {
	name    string
	query   string
	filters map[string]any
	user    string
}

var seedRecords = []seedRecord{
	// CRM
	{
		app: "crm", typ: "contact", recordID: "crm-c-001",
		name:  "John Smith",
		title: "John Smith – VP Engineering, Acme Corp",
		content: "Key enterprise contact at Acme Corp responsible for all engineering tooling purchases. " +
			"Budget authority up to $500 k annually. Last engaged February 2026 regarding Q2 renewal.",
		tags: []string{"vip", "enterprise", "engineering", "decision-maker"},
		url:  "https://crm.example.com/contacts/1",
	},
	{
		app: "crm", typ: "contact", recordID: "crm-c-002",
		name:  "Sarah Johnson",
		title: "Sarah Johnson – Head of Procurement, GlobalTech",
		content: "Procurement lead managing all SaaS vendor relationships at GlobalTech. " +
			"Currently evaluating three search platform vendors. Strong interest in unified indexing.",
		tags: []string{"procurement", "evaluation", "globaltech"},
		url:  "https://crm.example.com/contacts/2",
	},
	{
		app: "crm", typ: "contact", recordID: "crm-c-003",
		name:  "Marco Reyes",
		title: "Marco Reyes – CTO, Nimbus Logistics",
		content: "Technical decision-maker for Nimbus Logistics. Interested in API-first integrations " +
			"and data governance. Attended our webinar on enterprise search in January 2026.",
		tags: []string{"cto", "api", "logistics", "nimbus"},
		url:  "https://crm.example.com/contacts/3",
	},
	{
		app: "crm", typ: "deal", recordID: "crm-d-001",
		name:  "Acme Corp Enterprise License",
		title: "Acme Corp – Enterprise License Renewal Q1 2026",
		content: "Annual enterprise license for 500 seats. Contract value $450 000. " +
			"Currently in legal review; SLA terms under negotiation. Expected close: March 2026.",
		tags: []string{"enterprise", "renewal", "Q1-2026", "legal-review"},
		url:  "https://crm.example.com/deals/1",
	},
	{
		app: "crm", typ: "deal", recordID: "crm-d-002",
		name:  "GlobalTech Pilot",
		title: "GlobalTech – Analytics Platform 90-Day Pilot",
		content: "Pilot program for 50 users at $15 000. Expansion potential to $200 k ARR. " +
			"Pilot started February 2026; checkpoint review scheduled for April 2026.",
		tags: []string{"pilot", "analytics", "expansion", "globaltech"},
		url:  "https://crm.example.com/deals/2",
	},

	// Helpdesk
	{
		app: "helpdesk", typ: "ticket", recordID: "hd-t-001",
		name:  "TICKET-4521 SSO Login Failure",
		title: "TICKET-4521: SSO login broken after Okta config update",
		content: "Critical: approximately 200 enterprise users across 5 accounts cannot log in via SSO " +
			"following Okta configuration push on 2026-02-20. Engineering investigating certificate " +
			"mismatch between entity ID and ACS URL. Workaround: direct username/password login.",
		tags: []string{"critical", "sso", "okta", "authentication", "enterprise"},
		url:  "https://helpdesk.example.com/tickets/4521",
	},
	{
		app: "helpdesk", typ: "ticket", recordID: "hd-t-002",
		name:  "TICKET-4519 API Rate Limit 429 Errors",
		title: "TICKET-4519: Unexpected 429 errors on burst API requests",
		content: "Customer reports 429 Too Many Requests errors when performing burst uploads. " +
			"Rate limit: 1 000 req/min standard tier. Customer needs guidance on exponential " +
			"backoff and request batching best practices.",
		tags: []string{"api", "rate-limit", "429", "customer"},
		url:  "https://helpdesk.example.com/tickets/4519",
	},
	{
		app: "helpdesk", typ: "article", recordID: "hd-a-001",
		name:  "SSO SAML Okta Setup Guide",
		title: "How to Configure SAML SSO with Okta",
		content: "Step-by-step guide: create Okta application, set entity ID and ACS URL, " +
			"configure attribute mapping (email, firstName, lastName, groups), " +
			"run test login, troubleshoot certificate mismatches and clock skew errors.",
		tags: []string{"sso", "saml", "okta", "guide", "authentication"},
		url:  "https://helpdesk.example.com/articles/sso-okta",
	},
	{
		app: "helpdesk", typ: "article", recordID: "hd-a-002",
		name:  "API Rate Limiting Best Practices",
		title: "Understanding API Rate Limits and Retry Strategies",
		content: "Default limits: 1 000 req/min (standard), 10 000 req/min (enterprise). " +
			"Implement exponential backoff: wait 2^attempt seconds before retry. " +
			"Use bulk endpoints to reduce request count. Monitor X-RateLimit-Remaining header.",
		tags: []string{"api", "rate-limit", "retry", "best-practices"},
		url:  "https://helpdesk.example.com/articles/api-rate-limits",
	},

	// Analytics
	{
		app: "analytics", typ: "source", recordID: "an-s-001",
		name:  "Q1 2026 Revenue Dashboard",
		title: "Q1 2026 Revenue Analytics – 23 % YoY Growth",
		content: "Monthly Recurring Revenue reached $2.4 M. Growth drivers: enterprise upsells (+41 %), " +
			"new logo acquisition (+18 %). Churn improved to 1.8 %. " +
			"Top revenue segment: Enterprise (45 %), Mid-Market (35 %), SMB (20 %).",
		tags: []string{"revenue", "Q1-2026", "mrr", "growth", "churn"},
		url:  "https://analytics.example.com/dashboards/q1-2026-revenue",
	},
	{
		app: "analytics", typ: "source", recordID: "an-s-002",
		name:  "User Engagement Report Feb 2026",
		title: "Monthly Active User Engagement – February 2026",
		content: "MAU: 45 000 (+12 % MoM). Average session duration: 12 minutes. " +
			"Feature adoption: Search (78 %), Reports (65 %), API (45 %), Exports (30 %). " +
			"Mobile usage grew 34 %; iOS app rating 4.7 stars.",
		tags: []string{"mau", "engagement", "mobile", "features", "february-2026"},
		url:  "https://analytics.example.com/dashboards/engagement-feb-2026",
	},

	// Social
	{
		app: "social", typ: "post", recordID: "sm-p-001",
		name:  "SearchDeck 2.0 Launch Tweet",
		title: "Twitter/X: SearchDeck 2.0 General Availability Announcement",
		content: "Announcing SearchDeck 2.0 with unified cross-app full-text search! " +
			"Index CRM, helpdesk, finance, legal and more in one place. " +
			"847 likes, 312 retweets, 95 replies. Trending under #ProductHunt on launch day.",
		tags: []string{"launch", "product", "twitter", "trending", "searchdeck-2.0"},
		url:  "https://twitter.com/searchdeck/status/178920000001",
	},
	{
		app: "social", typ: "post", recordID: "sm-p-002",
		name:  "Acme Corp Case Study LinkedIn",
		title: "LinkedIn: How Acme Corp 10x'd Search ROI with SearchDeck",
		content: "Long-form case study: Acme Corp reduced time-to-find from 4 minutes to 25 seconds. " +
			"2 341 impressions, 187 reactions, 23 comments. " +
			"Highest-performing content this quarter; strong CTOs and engineering VP engagement.",
		tags: []string{"case-study", "linkedin", "roi", "acme-corp", "enterprise"},
		url:  "https://linkedin.com/posts/searchdeck-acme-case-study",
	},
	{
		app: "social", typ: "post", recordID: "sm-p-003",
		name:  "ProductHunt Launch Day Post",
		title: "ProductHunt: SearchDeck – #2 Product of the Day",
		content: "Launched on ProductHunt February 18 2026. Achieved #2 Product of the Day. " +
			"512 upvotes, 87 comments. Featured in the ProductHunt newsletter with 250 k subscribers.",
		tags: []string{"producthunt", "launch", "upvotes", "newsletter"},
		url:  "https://producthunt.com/posts/searchdeck",
	},

	// Jobs
	{
		app: "jobs", typ: "job", recordID: "jb-j-001",
		name:  "Senior Backend Engineer",
		title: "Senior Backend Engineer – Go / Distributed Systems (Remote)",
		content: "Platform team hiring a senior backend engineer. Requirements: 5+ years backend, " +
			"Go or similar, PostgreSQL, Redis, Docker. " +
			"Compensation: $150 k–$180 k + equity. Remote-first, US/EU timezones.",
		tags: []string{"go", "backend", "remote", "senior", "redis"},
		url:  "https://jobs.example.com/senior-backend-engineer",
	},
	{
		app: "jobs", typ: "job", recordID: "jb-j-002",
		name:  "ML Engineer Search Relevance",
		title: "Machine Learning Engineer – Search Relevance & Ranking",
		content: "Join the search team to improve ranking and relevance. " +
			"Required: PyTorch, transformer models, learning-to-rank, information retrieval. " +
			"Nice-to-have: experience with BM25 tuning, Elasticsearch, or Vespa.",
		tags: []string{"ml", "nlp", "search", "pytorch", "ranking", "relevance"},
		url:  "https://jobs.example.com/ml-engineer-search",
	},

	// Cloud
	{
		app: "cloud", typ: "source", recordID: "cl-s-001",
		name:  "AWS Production Architecture",
		title: "AWS Production Infrastructure – Architecture Overview",
		content: "Production stack on AWS us-east-1: ECS Fargate (application), " +
			"RDS PostgreSQL 15 Multi-AZ (primary DB), ElastiCache Redis 7 (caching), " +
			"S3 + CloudFront (static assets & CDN). Monthly cost ~$8 500.",
		tags: []string{"aws", "infrastructure", "ecs", "rds", "postgresql", "production"},
		url:  "https://cloud.example.com/docs/infrastructure",
	},
	{
		app: "cloud", typ: "source", recordID: "cl-s-002",
		name:  "Disaster Recovery Plan",
		title: "Cloud Disaster Recovery & Business Continuity Plan",
		content: "RTO: 4 hours. RPO: 1 hour. Strategy: daily automated RDS snapshots retained 30 days, " +
			"Multi-AZ failover, cross-region S3 replication. Incident runbook reviewed quarterly.",
		tags: []string{"disaster-recovery", "rto", "rpo", "backup", "runbook", "aws"},
		url:  "https://cloud.example.com/docs/disaster-recovery",
	},

	// Finance
	{
		app: "finance", typ: "transaction", recordID: "fi-t-001",
		name:  "AWS February 2026 Invoice",
		title: "AWS Cloud Services Invoice – February 2026",
		content: "AWS invoice breakdown: EC2 $3 200, RDS $1 800, S3 $450, " +
			"Data Transfer $620, ElastiCache $230, Other $200. Total: $6 500. " +
			"Cost centre: Infrastructure. Approved by CFO on 2026-02-05.",
		tags: []string{"aws", "invoice", "cloud", "infrastructure", "february-2026"},
		url:  "https://finance.example.com/transactions/inv-2026-02-aws",
	},
	{
		app: "finance", typ: "transaction", recordID: "fi-t-002",
		name:  "Acme Corp Q1 Payment",
		title: "Acme Corp – Enterprise License Payment Q1 2026",
		content: "Wire transfer received: $112 500 (Q1 instalment of $450 000 annual contract). " +
			"Invoice INV-2026-001. Revenue recognised January 2026. " +
			"Remaining balance: $337 500 due in Q2–Q4.",
		tags: []string{"payment", "enterprise", "acme-corp", "revenue", "wire-transfer"},
		url:  "https://finance.example.com/transactions/pay-2026-01-acme",
	},
	{
		app: "finance", typ: "transaction", recordID: "fi-t-003",
		name:  "Stripe Payout February",
		title: "Stripe Payout – February 2026 SaaS Subscriptions",
		content: "Stripe payout of $186 400 covering SMB and mid-market monthly subscriptions. " +
			"Net after Stripe fees (2.9 % + $0.30): $180 798. " +
			"Deposited to operating account on 2026-02-15.",
		tags: []string{"stripe", "payout", "subscriptions", "smb", "mid-market"},
		url:  "https://finance.example.com/transactions/payout-2026-02-stripe",
	},

	// Legal
	{
		app: "legal", typ: "contract", recordID: "lg-c-001",
		name:  "Acme Corp MSA 2026",
		title: "Acme Corp – Master Service Agreement 2026",
		content: "Three-year MSA with Acme Corp. Annual value: $450 000. Term: Jan 2026 – Dec 2028. " +
			"Includes: 99.9 % uptime SLA, SOC 2 Type II compliance, GDPR data processing addendum. " +
			"Signed by both parties 2026-01-10.",
		tags: []string{"msa", "enterprise", "acme-corp", "sla", "soc2", "signed"},
		url:  "https://legal.example.com/contracts/msa-acme-2026",
	},
	{
		app: "legal", typ: "contract", recordID: "lg-c-002",
		name:  "AWS Enterprise Discount Program",
		title: "AWS Enterprise Discount Program (EDP) Agreement",
		content: "Three-year committed-spend agreement with AWS. Annual commitment: $100 000. " +
			"Discount: 20 % off on-demand pricing across all services. " +
			"Signed January 2026. Renewal date: January 2029.",
		tags: []string{"aws", "edp", "commitment", "discount", "cloud", "signed"},
		url:  "https://legal.example.com/contracts/aws-edp-2026",
	},
	{
		app: "legal", typ: "contract", recordID: "lg-c-003",
		name:  "GlobalTech NDA",
		title: "GlobalTech – Mutual Non-Disclosure Agreement",
		content: "Mutual NDA with GlobalTech covering technical specifications and pricing " +
			"during pilot evaluation. Effective 2026-01-20, expires 2027-01-20. " +
			"Signed by General Counsel on both sides.",
		tags: []string{"nda", "globaltech", "pilot", "confidentiality"},
		url:  "https://legal.example.com/contracts/nda-globaltech-2026",
	},

	// Research
	{
		app: "research", typ: "article", recordID: "re-a-001",
		name:  "Vector Search vs Full-Text Search 2026",
		title: "Vector Search vs Full-Text Search – 2026 Benchmark",
		content: "Benchmark on 10 M document corpus: lexical full-text search excels at exact boolean and " +
			"keyword queries with sub-10 ms P99. Semantic vector search scores 40 % " +
			"higher on subjective relevance for ambiguous queries but 3× slower. " +
			"Recommendation: hybrid approach for production.",
		tags: []string{"vector-search", "fts", "bm25", "benchmark", "research"},
		url:  "https://research.example.com/articles/vector-vs-fts-2026",
	},
	{
		app: "research", typ: "source", recordID: "re-s-001",
		name:  "Competitor Analysis Q1 2026",
		title: "Enterprise Search Platforms – Competitive Analysis Q1 2026",
		content: "Reviewed five platforms: Elasticsearch, Algolia, Typesense, Meilisearch, and custom " +
			"lexical FTS. Key differentiators: Algolia highest DX score, Elasticsearch most " +
			"scalable, Typesense best OSS option, SearchDeck unique on multi-source unified indexing.",
		tags: []string{"competitive-analysis", "elasticsearch", "algolia", "typesense", "market"},
		url:  "https://research.example.com/sources/competitive-analysis-q1-2026",
	},

	// Productivity
	{
		app: "productivity", typ: "task", recordID: "pr-t-001",
		name:  "Q1 OKR Review Preparation",
		title: "Task: Prepare and Present Q1 2026 OKR Review",
		content: "Compile key results data for Q1 OKR review. Owner: Product team. " +
			"Due: 2026-03-15. Status: In Progress. " +
			"KRs to present: NPS +10 pts, feature adoption 70 %, enterprise churn < 2 %.",
		tags: []string{"okr", "Q1-2026", "planning", "product-team", "kpi"},
		url:  "https://productivity.example.com/tasks/q1-okr-review",
	},
	{
		app: "productivity", typ: "task", recordID: "pr-t-002",
		name:  "SOC2 Type II Audit Prep",
		title: "Task: Prepare Documentation for SOC2 Type II Audit",
		content: "Gather and organise evidence for SOC 2 Type II audit scheduled April 2026. " +
			"Required docs: access-control policies, incident-response procedures, " +
			"vendor security assessments, penetration-test report (conducted 2025-11).",
		tags: []string{"soc2", "audit", "security", "compliance", "documentation"},
		url:  "https://productivity.example.com/tasks/soc2-audit-prep",
	},
	{
		app: "productivity", typ: "task", recordID: "pr-t-003",
		name:  "SearchDeck Public API Docs",
		title: "Task: Publish SearchDeck Public API Documentation",
		content: "Write and publish developer-facing API docs covering authentication, " +
			"all /api/v1 endpoints, request/response schemas, code examples in Python, " +
			"JavaScript, and cURL. Target: developer portal launch Q2 2026.",
		tags: []string{"documentation", "api", "developer-portal", "Q2-2026"},
		url:  "https://productivity.example.com/tasks/api-docs-publish",
	},
}

var seedSavedSearches = []seedSavedSearch{
	{
		name:    "All CRM Contacts",
		query:   "contact customer",
		filters: map[string]any{"app": []string{"crm"}, "type": []string{"contact"}},
		user:    "admin",
	},
	{
		name:    "Open Helpdesk Tickets",
		query:   "ticket issue error bug",
		filters: map[string]any{"app": []string{"helpdesk"}, "type": []string{"ticket"}},
		user:    "support-team",
	},
	{
		name:    "Finance Invoices & Payments",
		query:   "invoice payment transaction",
		filters: map[string]any{"app": []string{"finance"}},
		user:    "finance-team",
	},
	{
		name:    "Active Legal Contracts",
		query:   "contract agreement signed",
		filters: map[string]any{"app": []string{"legal"}, "type": []string{"contract"}},
		user:    "legal-team",
	},
	{
		name:    "Open Engineering Tasks",
		query:   "task engineering development",
		filters: map[string]any{"app": []string{"productivity"}, "type": []string{"task"}},
		user:    "engineering",
	},
}
