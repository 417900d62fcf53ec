package services

// primarySeed is inserted, in order, into an empty catalog.
var primarySeed = []PromptInput{
	// Coding
	{
		Title:    "Code Review Expert",
		Content:  "You are a senior software engineer conducting a code review. Analyze the following code for:\n1. Bugs and potential issues\n2. Performance optimizations\n3. Security vulnerabilities\n4. Code style and best practices\n5. Suggestions for improvement\n\nProvide specific, actionable feedback with examples.",
		Category: "Coding",
		Tags:     []string{"code-review", "debugging"},
		Source:   "Reddit r/ChatGPT",
		Rating:   95,
	},
	{
		Title:    "Explain Code Like I'm 5",
		Content:  "Explain the following code in simple terms that a beginner could understand. Use analogies and real-world examples. Break down each part step by step:\n\n[paste code here]",
		Category: "Coding",
		Tags:     []string{"learning", "explanation"},
		Source:   "Twitter",
		Rating:   92,
	},
	{
		Title:    "Debug Assistant",
		Content:  "I'm getting this error: [error message]\n\nHere's my code: [paste code]\n\nPlease:\n1. Explain what the error means\n2. Identify the root cause\n3. Provide the corrected code\n4. Explain how to prevent this in the future",
		Category: "Coding",
		Tags:     []string{"debugging", "errors"},
		Source:   "Reddit r/programming",
		Rating:   94,
	},
	{
		Title:    "Convert Code Between Languages",
		Content:  "Convert the following [source language] code to [target language]. Maintain the same functionality and follow idiomatic patterns for the target language. Add comments explaining any significant differences:\n\n[paste code]",
		Category: "Coding",
		Tags:     []string{"conversion", "translation"},
		Source:   "HackerNews",
		Rating:   88,
	},
	{
		Title:    "Write Unit Tests",
		Content:  "Write comprehensive unit tests for the following function/class. Include:\n- Happy path tests\n- Edge cases\n- Error handling tests\n- Boundary conditions\n\nUse [testing framework] and follow best practices:\n\n[paste code]",
		Category: "Coding",
		Tags:     []string{"testing", "quality"},
		Source:   "Reddit r/programming",
		Rating:   91,
	},
	{
		Title:    "Refactor for Clean Code",
		Content:  "Refactor the following code following clean code principles:\n- Single Responsibility\n- DRY (Don't Repeat Yourself)\n- KISS (Keep It Simple)\n- Meaningful naming\n- Small functions\n\nExplain each change:\n\n[paste code]",
		Category: "Coding",
		Tags:     []string{"refactoring", "clean-code"},
		Source:   "Twitter",
		Rating:   90,
	},
	{
		Title:    "SQL Query Optimizer",
		Content:  "Optimize this SQL query for better performance. Explain:\n1. Current issues\n2. Indexing recommendations\n3. Query restructuring\n4. The optimized query with comments\n\n[paste query]",
		Category: "Coding",
		Tags:     []string{"sql", "optimization"},
		Source:   "Reddit r/Database",
		Rating:   87,
	},
	{
		Title:    "API Design Review",
		Content:  "Review this API design for:\n1. RESTful best practices\n2. Naming conventions\n3. Error handling\n4. Versioning strategy\n5. Security considerations\n\nProvide recommendations:\n\n[paste API spec]",
		Category: "Coding",
		Tags:     []string{"api", "design"},
		Source:   "HackerNews",
		Rating:   86,
	},
	{
		Title:    "Regex Generator",
		Content:  "Create a regex pattern that matches: [describe what you want to match]\n\nProvide:\n1. The regex pattern\n2. Explanation of each part\n3. Test cases that match\n4. Test cases that don't match\n5. Common edge cases to consider",
		Category: "Coding",
		Tags:     []string{"regex", "patterns"},
		Source:   "StackOverflow",
		Rating:   89,
	},
	{
		Title:    "Git Commit Message",
		Content:  "Write a clear, conventional commit message for the following changes. Follow the format: type(scope): description\n\nChanges made:\n[describe changes]",
		Category: "Coding",
		Tags:     []string{"git", "workflow"},
		Source:   "Twitter",
		Rating:   82,
	},

	// Writing
	{
		Title:    "Email Rewriter - Professional",
		Content:  "Rewrite this email to be more professional and polished while maintaining the core message. Improve clarity, tone, and structure:\n\n[paste email]",
		Category: "Writing",
		Tags:     []string{"email", "professional"},
		Source:   "Reddit r/ChatGPT",
		Rating:   93,
	},
	{
		Title:    "Blog Post Outline",
		Content:  "Create a detailed blog post outline for the topic: [topic]\n\nInclude:\n- Attention-grabbing title options (3)\n- Introduction hook\n- 5-7 main sections with subpoints\n- Key takeaways\n- Call to action\n- SEO keywords to target",
		Category: "Writing",
		Tags:     []string{"blog", "content"},
		Source:   "Twitter",
		Rating:   91,
	},
	{
		Title:    "Summarize Long Text",
		Content:  "Summarize the following text in:\n1. One sentence (TL;DR)\n2. One paragraph (executive summary)\n3. Bullet points (key points)\n\nMaintain accuracy and capture the main ideas:\n\n[paste text]",
		Category: "Writing",
		Tags:     []string{"summary", "condensing"},
		Source:   "Reddit r/productivity",
		Rating:   94,
	},
	{
		Title:    "Improve My Writing",
		Content:  "Improve this text for clarity, flow, and engagement. Fix grammar and spelling. Maintain my voice but make it more compelling:\n\n[paste text]\n\nProvide the improved version and explain key changes.",
		Category: "Writing",
		Tags:     []string{"editing", "improvement"},
		Source:   "Twitter",
		Rating:   92,
	},
	{
		Title:    "LinkedIn Post Creator",
		Content:  "Write an engaging LinkedIn post about [topic]. Make it:\n- Hook in the first line\n- Use short paragraphs\n- Include a personal story or insight\n- End with a question to drive engagement\n- Add relevant hashtags",
		Category: "Writing",
		Tags:     []string{"linkedin", "social"},
		Source:   "Reddit r/linkedin",
		Rating:   88,
	},
	{
		Title:    "Technical Documentation",
		Content:  "Write clear technical documentation for [feature/API/system]. Include:\n- Overview and purpose\n- Prerequisites\n- Step-by-step instructions\n- Code examples\n- Troubleshooting section\n- FAQ",
		Category: "Writing",
		Tags:     []string{"docs", "technical"},
		Source:   "HackerNews",
		Rating:   87,
	},
	{
		Title:    "Meeting Notes to Action Items",
		Content:  "Convert these meeting notes into:\n1. Clear action items with owners and deadlines\n2. Key decisions made\n3. Open questions/blockers\n4. Next steps\n\nMeeting notes:\n[paste notes]",
		Category: "Writing",
		Tags:     []string{"meetings", "productivity"},
		Source:   "Reddit r/productivity",
		Rating:   90,
	},
	{
		Title:    "Persuasive Copy",
		Content:  "Write persuasive copy for [product/service] that:\n- Addresses pain points\n- Highlights benefits (not just features)\n- Includes social proof elements\n- Has a clear CTA\n- Uses power words\n\nTarget audience: [describe audience]",
		Category: "Writing",
		Tags:     []string{"copywriting", "marketing"},
		Source:   "Twitter",
		Rating:   89,
	},

	// Analysis
	{
		Title:    "SWOT Analysis",
		Content:  "Perform a detailed SWOT analysis for [company/product/idea]:\n\nStrengths - internal positive factors\nWeaknesses - internal negative factors\nOpportunities - external positive factors\nThreats - external negative factors\n\nProvide specific, actionable insights for each.",
		Category: "Analysis",
		Tags:     []string{"business", "strategy"},
		Source:   "Reddit r/business",
		Rating:   91,
	},
	{
		Title:    "Pros and Cons List",
		Content:  "Create a comprehensive pros and cons analysis for [decision/option]. Consider:\n- Short-term vs long-term impacts\n- Financial implications\n- Time investment\n- Risk factors\n- Hidden considerations\n\nWeight each factor by importance.",
		Category: "Analysis",
		Tags:     []string{"decision-making", "evaluation"},
		Source:   "Reddit r/productivity",
		Rating:   90,
	},
	{
		Title:    "Root Cause Analysis",
		Content:  "Perform a root cause analysis for this problem: [describe problem]\n\nUse the 5 Whys technique and fishbone diagram approach. Identify:\n1. Symptoms vs root causes\n2. Contributing factors\n3. Recommended solutions\n4. Prevention measures",
		Category: "Analysis",
		Tags:     []string{"problem-solving", "debugging"},
		Source:   "HackerNews",
		Rating:   88,
	},
	{
		Title:    "Competitor Analysis",
		Content:  "Analyze [competitor] compared to [your company/product]:\n- Product/service comparison\n- Pricing strategy\n- Target market\n- Strengths and weaknesses\n- Market positioning\n- What can we learn from them?",
		Category: "Analysis",
		Tags:     []string{"business", "competitive"},
		Source:   "Reddit r/startups",
		Rating:   87,
	},
	{
		Title:    "Data Interpretation",
		Content:  "Analyze this data and provide insights:\n\n[paste data]\n\nInclude:\n1. Key trends and patterns\n2. Anomalies or outliers\n3. Correlations\n4. Actionable recommendations\n5. Limitations of the analysis",
		Category: "Analysis",
		Tags:     []string{"data", "insights"},
		Source:   "Twitter",
		Rating:   89,
	},
	{
		Title:    "Risk Assessment",
		Content:  "Assess the risks for [project/decision]:\n- Identify potential risks\n- Rate likelihood (1-5)\n- Rate impact (1-5)\n- Mitigation strategies\n- Contingency plans\n- Risk priority matrix",
		Category: "Analysis",
		Tags:     []string{"risk", "planning"},
		Source:   "Reddit r/projectmanagement",
		Rating:   86,
	},

	// Productivity
	{
		Title:    "Break Down Complex Task",
		Content:  "Break down this complex task into manageable steps: [task]\n\nFor each step provide:\n- Clear action item\n- Estimated time\n- Dependencies\n- Potential blockers\n- Definition of done",
		Category: "Productivity",
		Tags:     []string{"planning", "tasks"},
		Source:   "Reddit r/productivity",
		Rating:   93,
	},
	{
		Title:    "Daily Planning Assistant",
		Content:  "Help me plan my day. Here are my tasks and priorities:\n[list tasks]\n\nCreate a time-blocked schedule that:\n- Groups similar tasks\n- Includes breaks\n- Accounts for energy levels\n- Leaves buffer time\n- Identifies the MIT (Most Important Task)",
		Category: "Productivity",
		Tags:     []string{"planning", "time-management"},
		Source:   "Twitter",
		Rating:   92,
	},
	{
		Title:    "Weekly Review Template",
		Content:  "Guide me through a weekly review:\n\n1. What did I accomplish this week?\n2. What didn't get done and why?\n3. What did I learn?\n4. What are my priorities for next week?\n5. What habits am I building/breaking?\n6. What am I grateful for?\n7. What needs to change?",
		Category: "Productivity",
		Tags:     []string{"review", "reflection"},
		Source:   "Reddit r/productivity",
		Rating:   90,
	},
	{
		Title:    "Goal Setting (SMART)",
		Content:  "Help me create SMART goals for: [area of life/work]\n\nFor each goal, ensure it is:\n- Specific: What exactly?\n- Measurable: How will I track?\n- Achievable: Is it realistic?\n- Relevant: Why does it matter?\n- Time-bound: By when?\n\nInclude milestones and potential obstacles.",
		Category: "Productivity",
		Tags:     []string{"goals", "planning"},
		Source:   "Reddit r/getdisciplined",
		Rating:   91,
	},
	{
		Title:    "Decision Matrix",
		Content:  "Help me decide between these options: [list options]\n\nCriteria to consider: [list criteria or let AI suggest]\n\nCreate a weighted decision matrix, score each option, and provide a recommendation with reasoning.",
		Category: "Productivity",
		Tags:     []string{"decision-making", "analysis"},
		Source:   "HackerNews",
		Rating:   88,
	},
	{
		Title:    "Learning Plan Creator",
		Content:  "Create a learning plan for: [skill/topic]\n\nInclude:\n- Prerequisites\n- Resources (free and paid)\n- Milestones and timeline\n- Practice projects\n- How to measure progress\n- Common pitfalls to avoid",
		Category: "Productivity",
		Tags:     []string{"learning", "education"},
		Source:   "Reddit r/learnprogramming",
		Rating:   89,
	},

	// Creative
	{
		Title:    "Brainstorm Ideas",
		Content:  "Generate 20 creative ideas for [topic/problem]. Include:\n- 10 conventional approaches\n- 5 unconventional/wild ideas\n- 5 combinations of existing ideas\n\nFor each, briefly explain the core concept.",
		Category: "Creative",
		Tags:     []string{"brainstorming", "ideation"},
		Source:   "Twitter",
		Rating:   91,
	},
	{
		Title:    "Explain Like Different Personas",
		Content:  "Explain [concept] from these perspectives:\n1. A 5-year-old\n2. A teenager\n3. A busy executive\n4. A skeptical expert\n5. An enthusiastic beginner\n\nAdapt language, analogies, and depth for each.",
		Category: "Creative",
		Tags:     []string{"explanation", "teaching"},
		Source:   "Reddit r/ChatGPT",
		Rating:   90,
	},
	{
		Title:    "Analogy Generator",
		Content:  "Create 5 different analogies to explain [complex concept] to someone unfamiliar with the field. Use analogies from:\n1. Everyday life\n2. Sports\n3. Cooking\n4. Nature\n5. Building/construction",
		Category: "Creative",
		Tags:     []string{"analogies", "teaching"},
		Source:   "Twitter",
		Rating:   87,
	},
	{
		Title:    "Story Framework",
		Content:  "Create a story framework for [topic/message] using the hero's journey:\n1. Ordinary world\n2. Call to adventure\n3. Challenges and allies\n4. The ordeal\n5. Transformation\n6. Return with wisdom",
		Category: "Creative",
		Tags:     []string{"storytelling", "narrative"},
		Source:   "Reddit r/writing",
		Rating:   86,
	},
	{
		Title:    "Name Generator",
		Content:  "Generate creative names for [product/company/project]:\n- 10 descriptive names\n- 10 abstract/invented names\n- 10 metaphorical names\n- 5 acronym-based names\n\nFor each, check if the .com domain might be available.",
		Category: "Creative",
		Tags:     []string{"naming", "branding"},
		Source:   "HackerNews",
		Rating:   85,
	},

	// Business
	{
		Title:    "Elevator Pitch",
		Content:  "Create a 30-second elevator pitch for [product/idea/company]. Include:\n- Hook/attention grabber\n- Problem statement\n- Solution\n- Unique value proposition\n- Call to action\n\nMake it memorable and conversational.",
		Category: "Business",
		Tags:     []string{"pitch", "sales"},
		Source:   "Reddit r/startups",
		Rating:   92,
	},
	{
		Title:    "Customer Persona",
		Content:  "Create a detailed customer persona for [product/service]:\n- Demographics\n- Goals and motivations\n- Pain points and challenges\n- Buying behavior\n- Information sources\n- Objections to purchase\n- Day in the life narrative",
		Category: "Business",
		Tags:     []string{"marketing", "customer"},
		Source:   "Twitter",
		Rating:   89,
	},
	{
		Title:    "Pricing Strategy Analysis",
		Content:  "Analyze pricing strategy for [product/service]:\n- Current market rates\n- Value-based pricing considerations\n- Cost-plus analysis\n- Competitive positioning\n- Price sensitivity factors\n- Recommended pricing tiers",
		Category: "Business",
		Tags:     []string{"pricing", "strategy"},
		Source:   "Reddit r/startups",
		Rating:   87,
	},
	{
		Title:    "OKR Generator",
		Content:  "Create OKRs (Objectives and Key Results) for [team/company/individual]:\n\nFor each objective:\n- Clear, inspiring objective statement\n- 3-5 measurable key results\n- Initiatives to achieve them\n- Timeline\n- Success criteria",
		Category: "Business",
		Tags:     []string{"okrs", "goals"},
		Source:   "HackerNews",
		Rating:   88,
	},
	{
		Title:    "Stakeholder Communication",
		Content:  "Draft a stakeholder update for [project/initiative]:\n- Executive summary (2-3 sentences)\n- Progress and milestones\n- Key metrics\n- Risks and mitigation\n- Next steps\n- Ask/support needed\n\nAdjust tone for [audience].",
		Category: "Business",
		Tags:     []string{"communication", "stakeholders"},
		Source:   "Reddit r/projectmanagement",
		Rating:   86,
	},

	// Personal
	{
		Title:    "Difficult Conversation Prep",
		Content:  "Help me prepare for a difficult conversation about [topic] with [person/role]:\n- Key points to make\n- Potential objections and responses\n- Questions to ask\n- How to stay calm\n- Desired outcome\n- Best/worst case scenarios",
		Category: "Personal",
		Tags:     []string{"communication", "relationships"},
		Source:   "Reddit r/socialskills",
		Rating:   91,
	},
	{
		Title:    "Self-Reflection Questions",
		Content:  "Guide me through deep self-reflection on [area of life]. Ask me thoughtful questions about:\n- Current state\n- Desired state\n- Obstacles\n- Values alignment\n- Past patterns\n- Action steps\n\nPause between each for my response.",
		Category: "Personal",
		Tags:     []string{"reflection", "growth"},
		Source:   "Twitter",
		Rating:   89,
	},
	{
		Title:    "Habit Tracker Setup",
		Content:  "Help me design a habit tracking system for [habits I want to build]:\n- Habit stacking opportunities\n- Implementation intentions (when, where, how)\n- Tracking method\n- Reward system\n- Accountability measures\n- Failure recovery plan",
		Category: "Personal",
		Tags:     []string{"habits", "self-improvement"},
		Source:   "Reddit r/getdisciplined",
		Rating:   88,
	},
	{
		Title:    "Feedback Request",
		Content:  "Help me ask for feedback on [topic/work/behavior] from [person/group]:\n- Specific questions to ask\n- How to frame the request\n- Making it safe to be honest\n- Follow-up questions\n- How to receive feedback gracefully",
		Category: "Personal",
		Tags:     []string{"feedback", "growth"},
		Source:   "HackerNews",
		Rating:   85,
	},
}

// supplementalSeed is appended by AppendSupplementalSeed; titles already present are skipped.
var supplementalSeed = []PromptInput{
	{
		Title:    "System Prompt Engineer",
		Content:  "You are an expert at crafting system prompts for AI assistants. Given this use case: [describe the assistant's purpose]\n\nCreate a comprehensive system prompt that includes:\n1. Role and personality definition\n2. Core capabilities and constraints\n3. Response format guidelines\n4. Edge case handling\n5. Example interactions\n\nMake it concise but complete.",
		Category: "Coding",
		Tags:     []string{"prompts", "ai", "meta"},
		Source:   "Arc's Toolkit",
		Rating:   96,
	},
	{
		Title:    "Overnight Autonomous Agent",
		Content:  "You are an autonomous coding agent working overnight. Your task: [describe task]\n\nRules:\n1. Work independently, make decisions\n2. Commit and push working code frequently\n3. If blocked, document the issue and move to next task\n4. Ping the user on completion with summary\n5. Never overwrite existing data without backup\n6. Test before deploying\n\nStart with a plan, then execute.",
		Category: "Coding",
		Tags:     []string{"automation", "agents", "autonomous"},
		Source:   "Arc's Toolkit",
		Rating:   97,
	},
	{
		Title:    "Codebase Archaeologist",
		Content:  "Analyze this codebase and create a comprehensive map:\n\n1. Architecture overview (diagram in ASCII)\n2. Key files and their purposes\n3. Data flow between components\n4. External dependencies and why they're used\n5. Potential tech debt or issues\n6. Suggested improvements\n\nBe thorough but concise.",
		Category: "Coding",
		Tags:     []string{"architecture", "analysis", "documentation"},
		Source:   "Arc's Toolkit",
		Rating:   94,
	},
	{
		Title:    "Memory Palace Builder",
		Content:  "Help me remember [topic/list/concept] using the memory palace technique:\n\n1. Choose a familiar location (my home, office, etc.)\n2. Create vivid, absurd mental images for each item\n3. Place them along a logical path\n4. Add sensory details (sounds, smells, textures)\n5. Create a walkthrough story\n6. Quiz me to reinforce\n\nMake it memorable and fun.",
		Category: "Personal",
		Tags:     []string{"memory", "learning", "techniques"},
		Source:   "Arc's Toolkit",
		Rating:   93,
	},
	{
		Title:    "Devil's Advocate",
		Content:  "I'm considering: [decision/idea/plan]\n\nBe my devil's advocate. Argue against this position:\n1. What could go wrong?\n2. What am I not seeing?\n3. What assumptions am I making?\n4. Who would disagree and why?\n5. What's the strongest counter-argument?\n\nBe brutally honest, then help me address valid concerns.",
		Category: "Analysis",
		Tags:     []string{"critical-thinking", "decisions", "debate"},
		Source:   "Arc's Toolkit",
		Rating:   95,
	},
	{
		Title:    "Second Brain Organizer",
		Content:  "Help me organize my notes/thoughts on [topic] into a second brain system:\n\n1. Identify key concepts and create atomic notes\n2. Find connections between ideas (link suggestions)\n3. Create a MOC (Map of Content) structure\n4. Suggest tags and categories\n5. Identify gaps in my knowledge\n6. Recommend next learning steps\n\nUse Zettelkasten principles.",
		Category: "Productivity",
		Tags:     []string{"notes", "pkm", "organization"},
		Source:   "Arc's Toolkit",
		Rating:   94,
	},
}
