package section

// DefaultSections returns the sample document the service starts with.
func DefaultSections() []Section {
	return []Section{
		{
			ID:    "1",
			Title: "Introduction",
			Content: `This document provides a comprehensive overview of artificial intelligence and machine learning concepts. In this section, we explore the fundamental principles that govern AI systems and their applications in modern technology.

Artificial Intelligence represents one of the most significant technological advances of our time. It encompasses various techniques and methodologies that enable machines to simulate human cognitive functions such as learning, reasoning, and problem-solving.

The field has evolved rapidly from simple rule-based systems to sophisticated neural networks capable of processing vast amounts of data and making complex decisions. This evolution has opened new possibilities across industries including healthcare, finance, transportation, and entertainment.`,
		},
		{
			ID:    "2",
			Title: "Machine Learning Fundamentals",
			Content: `Machine Learning is a subset of artificial intelligence that focuses on creating systems that can learn and improve from experience without being explicitly programmed. This approach has revolutionized how we solve complex problems and extract insights from data.

There are three main types of machine learning: supervised learning, unsupervised learning, and reinforcement learning. Each type serves different purposes and is suitable for different kinds of problems.

Supervised learning uses labeled training data to learn a mapping from inputs to outputs. Common examples include image classification, spam detection, and predictive modeling. The algorithm learns from examples and can then make predictions on new, unseen data.

Unsupervised learning, on the other hand, works with unlabeled data to discover hidden patterns or structures. This includes techniques like clustering, dimensionality reduction, and association rule learning.`,
		},
		{
			ID:    "3",
			Title: "Neural Networks and Deep Learning",
			Content: `Neural networks are computational models inspired by the human brain's structure and function. They consist of interconnected nodes (neurons) organized in layers that process information and learn complex patterns from data.

Deep learning is a specialized form of machine learning that uses neural networks with multiple hidden layers. These deep networks can automatically learn hierarchical representations of data, making them particularly effective for tasks like image recognition, natural language processing, and speech recognition.

The power of deep learning lies in its ability to automatically discover relevant features from raw data. Traditional machine learning approaches often required manual feature engineering, but deep learning models can learn these features automatically through the training process.

Convolutional Neural Networks (CNNs) have been particularly successful in computer vision tasks, while Recurrent Neural Networks (RNNs) and Transformers have shown remarkable performance in natural language processing applications.`,
		},
	}
}

// NewSectionContent is the canned body for sections added without content.
const NewSectionContent = `This is a new section that has been dynamically added to the document. You can customize this content and interact with the AI assistant about this specific section.

This demonstrates the dynamic nature of the interface, where new document sections can be added on demand. Each section maintains its own chat context and conversation history with the AI assistant.

The AI can help you analyze, summarize, or answer questions about any content in this section. Try asking specific questions about the text or requesting explanations of complex concepts.`
