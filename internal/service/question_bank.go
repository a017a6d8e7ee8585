package service

import (
	"context"
	"strings"

	"talent-scout/internal/domain"
)

const (
	maxQuestions    = 5
	questionsPerKey = 2
)

type bankEntry struct {
	key       string
	questions []string
}

// knowledgeBank se recorre en este orden; el orden define el resultado.
var knowledgeBank = []bankEntry{
	{key: "python", questions: []string{
		"Explain list vs tuple and when you'd use each in Python.",
		"How do generators differ from list comprehensions? Provide a use case.",
		"What is GIL and how does it affect multithreading?",
		"Write a Python snippet to merge two dictionaries.",
	}},
	{key: "django", questions: []string{
		"How do middleware and signals differ in Django? Provide an example use case.",
		"Explain Django ORM select_related vs prefetch_related with an example.",
		"How do you secure a Django REST API (auth, throttling, permissions)?",
	}},
	{key: "javascript", questions: []string{
		"Explain event loop and microtask queue in JavaScript.",
		"When would you use closures? Provide a practical example.",
		"What is debouncing vs throttling and when to use each?",
	}},
	{key: "react", questions: []string{
		"How do React hooks replace class lifecycle methods? Map useEffect/useMemo examples.",
		"Explain reconciliation and keys in lists; why do incorrect keys cause bugs?",
		"How would you implement infinite scroll efficiently in React?",
	}},
	{key: "node", questions: []string{
		"What are streams in Node.js and how do they improve performance?",
		"Explain cluster module and when you'd use it.",
		"How do you handle backpressure when reading/writing large files?",
	}},
	{key: "sql", questions: []string{
		"How do you detect and resolve N+1 query problems?",
		"Explain indexing strategy for a table with frequent writes and analytical reads.",
		"What is a window function? Give an example query.",
	}},
	{key: "mongodb", questions: []string{
		"How do you model many-to-many relationships in MongoDB?",
		"Explain aggregation pipeline stages for grouping and filtering efficiently.",
		"How do you design indexes for compound queries in MongoDB?",
	}},
	{key: "aws", questions: []string{
		"Design a fault-tolerant web app using ALB, ASG, and RDS—explain trade-offs.",
		"When do you pick SQS vs SNS? Provide a scenario.",
		"How do you secure secrets on AWS without hardcoding them?",
	}},
	{key: "docker", questions: []string{
		"Explain multi-stage builds and why they matter for image size/security.",
		"How do you persist data in containers and avoid permission issues?",
		"What is the difference between ENTRYPOINT and CMD?",
	}},
	{key: "kubernetes", questions: []string{
		"Explain Deployments vs StatefulSets; when to pick each?",
		"How would you implement blue/green or canary deployments on Kubernetes?",
		"What are liveness vs readiness probes and common pitfalls?",
	}},
	{key: "tensorflow", questions: []string{
		"How do you prevent overfitting in a CNN trained on limited data?",
		"Explain tf.data pipelines and how to optimize input performance.",
		"When would you use tf.function and autograph?",
	}},
	{key: "pytorch", questions: []string{
		"What is the role of autograd? Show how to freeze layers during fine-tuning.",
		"Contrast DataLoader num_workers, pin_memory and their impact.",
		"How do you implement gradient clipping and why?",
	}},
}

// genericQuestions se usan cuando ningun token coincide con el banco.
var genericQuestions = []string{
	"Describe a challenging bug you fixed recently and how you diagnosed it.",
	"Explain how you design for scalability and observability in your services.",
	"Walk through your process for profiling and optimizing a slow endpoint.",
}

// GenerateOfflineQuestions arma hasta 5 preguntas con coincidencias por substring.
// Es determinista: el orden sale de los tokens y del orden del banco.
func GenerateOfflineQuestions(techStack string) []string {
	chosen := make([]string, 0, maxQuestions+questionsPerKey)
	for _, token := range techTokens(techStack) {
		for _, entry := range knowledgeBank {
			if strings.Contains(token, entry.key) && len(chosen) < maxQuestions {
				chosen = append(chosen, entry.questions[:questionsPerKey]...)
			}
		}
	}
	if len(chosen) == 0 {
		return append([]string(nil), genericQuestions...)
	}

	seen := make(map[string]struct{}, len(chosen))
	uniq := make([]string, 0, len(chosen))
	for _, q := range chosen {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		uniq = append(uniq, q)
	}
	if len(uniq) > maxQuestions {
		uniq = uniq[:maxQuestions]
	}
	return uniq
}

func techTokens(techStack string) []string {
	parts := strings.Split(techStack, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		if t == "" {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// OfflineQuestionGenerator es la estrategia sin red; nunca falla.
type OfflineQuestionGenerator struct{}

func (OfflineQuestionGenerator) Generate(_ context.Context, techStack string) (domain.QuestionSet, error) {
	return domain.QuestionSet{
		Questions: GenerateOfflineQuestions(techStack),
		Source:    domain.QuestionSourceOffline,
	}, nil
}
